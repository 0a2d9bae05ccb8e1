package easypostapi

import (
	"context"
	"encoding/json"
	"net/http"

	"shipping/internal/core/domain/model/customs"
)

const customsInfosPath = "/customs_infos"

// CustomsInfoGateway implements ports.CustomsInfoGateway against the shipping service.
type CustomsInfoGateway struct {
	client *Client
}

// NewCustomsInfoGateway creates a new customs info gateway.
func NewCustomsInfoGateway(client *Client) *CustomsInfoGateway {
	return &CustomsInfoGateway{client: client}
}

// Create persists the draft and returns the declaration the service answered with.
func (g *CustomsInfoGateway) Create(ctx context.Context, draft customs.Draft) (*customs.Info, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payload, err := g.client.postForm(ctx, customsInfosPath, customsInfoForm(draft))
	if err != nil {
		return nil, err
	}

	var dto customsInfoDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, NewRequestErrorWithCause(http.MethodPost, customsInfosPath, err)
	}

	return dto.toDomain()
}
