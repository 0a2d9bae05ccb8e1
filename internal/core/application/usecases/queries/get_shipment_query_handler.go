package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentReader retrieves shipments from the shipping service.
// Satisfied by the API adapter's shipment gateway.
type ShipmentReader interface {
	Get(ctx context.Context, shipmentID kernel.ResourceID) (*shipment.Shipment, error)
}

// GetShipmentQueryHandler retrieves a shipment from the shipping service.
// Returns the full aggregate with its quoted rates, ready for rate selection
// and purchase.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(gateway)
//	query, _ := NewGetShipmentQuery(id)
//
//	shipment, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get shipment: %v", err)
//	    return err
//	}
//	fmt.Printf("%d rates available\n", len(shipment.Rates()))
type GetShipmentQueryHandler struct {
	shipmentGateway ShipmentReader
}

// NewGetShipmentQueryHandler creates a handler for shipment retrieval queries.
func NewGetShipmentQueryHandler(shipmentGateway ShipmentReader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{
		shipmentGateway: shipmentGateway,
	}
}

// Handle executes the query to retrieve one shipment.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.shipmentGateway.Get(ctx, query.ShipmentID())
}
