package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// CloneShipmentCommandHandler handles the business logic for shipment cloning.
// Copies every defined field off the source shipment and issues exactly one
// additional create round trip. The clone is a genuinely new remote resource:
// it gets its own identifier and its own freshly quoted rates, while the
// source shipment stays untouched.
//
// Example:
//
//	handler := NewCloneShipmentCommandHandler(gateway)
//	cmd, _ := NewCloneShipmentCommand(original)
//
//	clone, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment cloning failed: %w", err)
//	}
//	// clone.ID() differs from original.ID()
type CloneShipmentCommandHandler struct {
	shipmentGateway ShipmentCreator
}

// NewCloneShipmentCommandHandler creates a handler for shipment cloning operations.
func NewCloneShipmentCommandHandler(shipmentGateway ShipmentCreator) CloneShipmentCommandHandler {
	return CloneShipmentCommandHandler{
		shipmentGateway: shipmentGateway,
	}
}

// Handle processes the shipment cloning command.
// The source's draft carries over; service-assigned state (identifier, rates,
// scan form) does not.
func (h CloneShipmentCommandHandler) Handle(ctx context.Context, cmd CloneShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.shipmentGateway.Create(ctx, cmd.Shipment().Draft())
}
