package commands_test

import (
	"context"
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentCreateGateway struct{ mock.Mock }

func (m *MockShipmentCreateGateway) Create(ctx context.Context, draft shipment.Draft) (*shipment.Shipment, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	draft := testShipmentDraft(t)
	cmd, _ := commands.NewCreateShipmentCommand(draft)

	persisted := testShipment(t, "shp_1",
		testRate(t, "rate_1", "shp_1", "Priority", "7.58"),
		testRate(t, "rate_2", "shp_1", "Express", "31.25"),
	)

	gateway := new(MockShipmentCreateGateway)
	gateway.On("Create", ctx, draft).Return(persisted, nil).Once()

	h := commands.NewCreateShipmentCommandHandler(gateway)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsEqual(persisted))
	assert.Len(t, result.Rates(), 2)
	gateway.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	gateway := new(MockShipmentCreateGateway)
	h := commands.NewCreateShipmentCommandHandler(gateway)

	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, result)
	gateway.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(testShipmentDraft(t))

	gateway := new(MockShipmentCreateGateway)
	gateway.On("Create", ctx, mock.Anything).Return(nil, errors.New("rate quoting failed")).Once()

	h := commands.NewCreateShipmentCommandHandler(gateway)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, result)
	gateway.AssertExpectations(t)
}
