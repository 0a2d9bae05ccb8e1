package ports

import (
	"context"

	"shipping/internal/core/domain/model/parcel"
)

// ParcelGateway defines the remote persistence contract for parcels.
type ParcelGateway interface {
	// Create persists the draft with the shipping service.
	// Returns the parcel carrying the identifier the service assigned.
	Create(ctx context.Context, draft parcel.Draft) (*parcel.Parcel, error)
}
