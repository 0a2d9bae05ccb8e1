package scanform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/scanform"
	"shipping/internal/pkg/errs"
)

func TestRestoreScanForm(t *testing.T) {
	id, err := kernel.NewResourceID("sf_123")
	require.NoError(t, err)

	form, err := scanform.RestoreScanForm(
		id,
		"https://files.example.com/scan_forms/sf_123.pdf",
		"application/pdf",
		[]string{"9400110898825022579493", "9400110898825022579509"},
	)
	require.NoError(t, err)

	assert.NoError(t, form.Validate())
	assert.True(t, form.ID().IsEqual(id))
	assert.Equal(t, "https://files.example.com/scan_forms/sf_123.pdf", form.FormURL())
	assert.Equal(t, "application/pdf", form.FormFileType())
	assert.Equal(t, []string{"9400110898825022579493", "9400110898825022579509"}, form.TrackingCodes())
}

func TestRestoreScanForm_InvalidID(t *testing.T) {
	_, err := scanform.RestoreScanForm(kernel.ResourceID{}, "https://files.example.com/sf.pdf", "application/pdf", nil)

	assert.ErrorIs(t, err, kernel.ErrResourceIDIsNotConstructed)
}

func TestRestoreScanForm_EmptyFormURL(t *testing.T) {
	id, err := kernel.NewResourceID("sf_123")
	require.NoError(t, err)

	_, err = scanform.RestoreScanForm(id, "", "application/pdf", nil)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestScanForm_TrackingCodesReturnsCopy(t *testing.T) {
	id, err := kernel.NewResourceID("sf_123")
	require.NoError(t, err)

	form, err := scanform.RestoreScanForm(id, "https://files.example.com/sf.pdf", "application/pdf", []string{"code-1"})
	require.NoError(t, err)

	codes := form.TrackingCodes()
	codes[0] = "mutated"

	assert.Equal(t, []string{"code-1"}, form.TrackingCodes())
}

func TestScanForm_Validate_NotConstructed(t *testing.T) {
	var form scanform.ScanForm

	assert.ErrorIs(t, form.Validate(), scanform.ErrScanFormIsNotConstructed)
}

func TestScanForm_Validate_Nil(t *testing.T) {
	var form *scanform.ScanForm

	assert.ErrorIs(t, form.Validate(), scanform.ErrScanFormIsNotConstructed)
}
