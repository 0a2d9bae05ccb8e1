package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

func TestNewResourceID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "shipment id",
			value: "shp_4f18b1e6",
		},
		{
			name:  "rate id",
			value: "rate_55aa3f12",
		},
		{
			name:  "arbitrary opaque id",
			value: "x",
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			value:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewResourceID(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.value, id.String())
				assert.NoError(t, id.Validate())
			}
		})
	}
}

func TestResourceID_IsEqual(t *testing.T) {
	t.Run("same value", func(t *testing.T) {
		a, err := kernel.NewResourceID("shp_1")
		require.NoError(t, err)
		b, err := kernel.NewResourceID("shp_1")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different values", func(t *testing.T) {
		a, err := kernel.NewResourceID("shp_1")
		require.NoError(t, err)
		b, err := kernel.NewResourceID("shp_2")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestResourceID_Validate(t *testing.T) {
	t.Run("constructed id is valid", func(t *testing.T) {
		id, err := kernel.NewResourceID("adr_9c01")
		require.NoError(t, err)
		assert.NoError(t, id.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.ResourceID
		err := id.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrResourceIDIsNotConstructed)
	})
}
