package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentGateway defines the remote lifecycle contract for shipments.
// Creation and purchase are single round trips against the shipping service:
// each call either returns a fully formed aggregate or an error, never a
// partial object.
type ShipmentGateway interface {
	// Create persists the draft with the shipping service.
	// Returns the shipment carrying the identifier the service assigned
	// and the rates it quoted. Creation is atomic: on error no shipment
	// came into existence.
	Create(ctx context.Context, draft shipment.Draft) (*shipment.Shipment, error)

	// Buy purchases the given rate for the shipment it was quoted for.
	// Returns the label the service produced. Purchases are not retried.
	Buy(ctx context.Context, shipmentID kernel.ResourceID, rate shipment.Rate) (*label.Label, error)

	// Get retrieves a previously created shipment by its identifier.
	Get(ctx context.Context, shipmentID kernel.ResourceID) (*shipment.Shipment, error)
}
