package commands

import (
	"context"

	"shipping/internal/core/domain/model/address"
)

// CreateAddressCommandHandler handles the business logic for address creation.
// Submits the draft to the shipping service and returns the persisted address
// carrying the identifier the service assigned.
type CreateAddressCommandHandler struct {
	addressGateway AddressCreator
}

// NewCreateAddressCommandHandler creates a handler for address creation operations.
func NewCreateAddressCommandHandler(addressGateway AddressCreator) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		addressGateway: addressGateway,
	}
}

// Handle processes the address creation command.
// A single gateway round trip either yields the persisted address or an error.
func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.addressGateway.Create(ctx, cmd.Draft())
}
