package easypostapi

import (
	"context"
	"encoding/json"
	"net/http"

	"shipping/internal/core/domain/model/address"
)

const addressesPath = "/addresses"

// AddressGateway implements ports.AddressGateway against the shipping service.
type AddressGateway struct {
	client *Client
}

// NewAddressGateway creates a new address gateway.
func NewAddressGateway(client *Client) *AddressGateway {
	return &AddressGateway{client: client}
}

// Create persists the draft and returns the address the service answered with.
func (g *AddressGateway) Create(ctx context.Context, draft address.Draft) (*address.Address, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payload, err := g.client.postForm(ctx, addressesPath, addressForm(draft))
	if err != nil {
		return nil, err
	}

	var dto addressDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodPost, addressesPath, err)
	}

	return dto.toDomain()
}
