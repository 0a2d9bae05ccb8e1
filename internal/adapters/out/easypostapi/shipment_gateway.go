package easypostapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

const shipmentsPath = "/shipments"

// ShipmentGateway implements ports.ShipmentGateway against the shipping service.
type ShipmentGateway struct {
	client *Client
}

// NewShipmentGateway creates a new shipment gateway.
func NewShipmentGateway(client *Client) *ShipmentGateway {
	return &ShipmentGateway{client: client}
}

// Create persists the draft in a single round trip and returns the shipment
// carrying the identifier the service assigned and the rates it quoted.
// Creation is atomic: any failure, from transport up to mapping the response,
// means no shipment came into existence.
func (g *ShipmentGateway) Create(ctx context.Context, draft shipment.Draft) (*shipment.Shipment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payload, err := g.client.postForm(ctx, shipmentsPath, shipmentForm(draft))
	if err != nil {
		return nil, err
	}

	var dto shipmentDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodPost, shipmentsPath, err)
	}

	return dto.toDomainWithDraft(draft)
}

// Buy purchases the given rate for the shipment it was quoted for and
// returns the label the service produced. Failed purchases are not retried.
func (g *ShipmentGateway) Buy(
	ctx context.Context,
	shipmentID kernel.ResourceID,
	rate shipment.Rate,
) (*label.Label, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}

	path := shipmentsPath + "/" + shipmentID.String() + "/buy"

	payload, err := g.client.postForm(ctx, path, rateForm(rate))
	if err != nil {
		return nil, err
	}

	var dto buyResponseDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodPost, path, err)
	}

	return dto.toDomain(shipmentID)
}

// Get retrieves a previously created shipment and rebuilds the aggregate
// from the full document the service answered with.
func (g *ShipmentGateway) Get(ctx context.Context, shipmentID kernel.ResourceID) (*shipment.Shipment, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	path := shipmentsPath + "/" + shipmentID.String()

	payload, err := g.client.get(ctx, path)
	if err != nil {
		var requestErr *RequestError
		if errors.As(err, &requestErr) && requestErr.StatusCode == http.StatusNotFound {
			return nil, errs.NewObjectNotFoundError("shipment", shipmentID.String())
		}
		return nil, err
	}

	var dto shipmentDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodGet, path, err)
	}

	return dto.toDomain()
}
