package easypostapi

import (
	"context"
	"encoding/json"
	"net/http"

	"shipping/internal/core/domain/model/parcel"
)

const parcelsPath = "/parcels"

// ParcelGateway implements ports.ParcelGateway against the shipping service.
type ParcelGateway struct {
	client *Client
}

// NewParcelGateway creates a new parcel gateway.
func NewParcelGateway(client *Client) *ParcelGateway {
	return &ParcelGateway{client: client}
}

// Create persists the draft and returns the parcel the service answered with.
func (g *ParcelGateway) Create(ctx context.Context, draft parcel.Draft) (*parcel.Parcel, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payload, err := g.client.postForm(ctx, parcelsPath, parcelForm(draft))
	if err != nil {
		return nil, err
	}

	var dto parcelDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodPost, parcelsPath, err)
	}

	return dto.toDomain()
}
