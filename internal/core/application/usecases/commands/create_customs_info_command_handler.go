package commands

import (
	"context"

	"shipping/internal/core/domain/model/customs"
)

// CreateCustomsInfoCommandHandler handles the business logic for customs
// declaration creation.
type CreateCustomsInfoCommandHandler struct {
	customsGateway CustomsInfoCreator
}

// NewCreateCustomsInfoCommandHandler creates a handler for customs declaration
// creation operations.
func NewCreateCustomsInfoCommandHandler(customsGateway CustomsInfoCreator) CreateCustomsInfoCommandHandler {
	return CreateCustomsInfoCommandHandler{
		customsGateway: customsGateway,
	}
}

// Handle processes the customs declaration creation command.
func (h *CreateCustomsInfoCommandHandler) Handle(ctx context.Context, cmd CreateCustomsInfoCommand) (*customs.Info, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.customsGateway.Create(ctx, cmd.Draft())
}
