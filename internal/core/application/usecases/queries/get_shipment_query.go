// Package queries contains read operations for retrieving remote state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never modify anything on the shipping service.
package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a previously created shipment by its identifier.
// The shipping service is the source of truth, so the query is the way to get
// back at a shipment whose local value is gone.
//
// Example:
//
//	id, _ := kernel.NewResourceID("shp_123")
//	query, err := NewGetShipmentQuery(id)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment id: %w", err)
//	}
//
//	handler := NewGetShipmentQueryHandler(gateway)
//	shipment, err := handler.Handle(ctx, query)
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ResourceID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
// Validates the identifier before any network traffic can happen.
func NewGetShipmentQuery(shipmentID kernel.ResourceID) (GetShipmentQuery, error) {
	query := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.ResourceID {
	return q.shipmentID
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.ResourceID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}
