package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Submits the draft in a single round trip; the shipping service assigns the
// identifier and quotes the rates that come back on the persisted aggregate.
// Creation is atomic: any failure means no shipment value exists.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(gateway)
//	cmd, _ := NewCreateShipmentCommand(draft)
//
//	shipment, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// shipment.Rates() holds the quotes to choose from
type CreateShipmentCommandHandler struct {
	shipmentGateway ShipmentCreator
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(shipmentGateway ShipmentCreator) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		shipmentGateway: shipmentGateway,
	}
}

// Handle processes the shipment creation command.
// A single gateway round trip either yields the persisted shipment with its
// quoted rates or an error.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.shipmentGateway.Create(ctx, cmd.Draft())
}
