package ports

import (
	"context"

	"shipping/internal/core/domain/model/customs"
)

// CustomsInfoGateway defines the remote persistence contract for customs
// declarations.
type CustomsInfoGateway interface {
	// Create persists the draft with the shipping service.
	// Returns the customs info carrying the identifier the service assigned.
	Create(ctx context.Context, draft customs.Draft) (*customs.Info, error)
}
