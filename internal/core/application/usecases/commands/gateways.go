// Package commands contains business operations that modify remote state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a single gateway round
// trip, and mapping of the persisted result.
package commands

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/customs"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
)

// Gateway interfaces name the exact slice of remote behavior each handler
// needs. The full contracts live in ports and are satisfied by the API
// adapter; handlers depend only on the operations they issue.
type (
	// AddressCreator persists address drafts with the shipping service.
	AddressCreator interface {
		Create(ctx context.Context, draft address.Draft) (*address.Address, error)
	}

	// ParcelCreator persists parcel drafts with the shipping service.
	ParcelCreator interface {
		Create(ctx context.Context, draft parcel.Draft) (*parcel.Parcel, error)
	}

	// CustomsInfoCreator persists customs declarations with the shipping service.
	CustomsInfoCreator interface {
		Create(ctx context.Context, draft customs.Draft) (*customs.Info, error)
	}

	// ShipmentCreator persists shipment drafts with the shipping service.
	// Creation is atomic: an error means no shipment came into existence.
	ShipmentCreator interface {
		Create(ctx context.Context, draft shipment.Draft) (*shipment.Shipment, error)
	}

	// ShipmentBuyer purchases a selected rate for an existing shipment.
	ShipmentBuyer interface {
		Buy(ctx context.Context, shipmentID kernel.ResourceID, rate shipment.Rate) (*label.Label, error)
	}
)
