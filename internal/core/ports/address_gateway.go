package ports

import (
	"context"

	"shipping/internal/core/domain/model/address"
)

// AddressGateway defines the remote persistence contract for addresses.
// The shipping service owns address state; the gateway submits drafts and
// returns the persisted resource the service answered with.
type AddressGateway interface {
	// Create persists the draft with the shipping service.
	// Returns the address carrying the identifier the service assigned,
	// or an error if the service rejected the draft. Never returns a
	// partially persisted address.
	Create(ctx context.Context, draft address.Draft) (*address.Address, error)
}
