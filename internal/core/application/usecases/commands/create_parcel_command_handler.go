package commands

import (
	"context"

	"shipping/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
type CreateParcelCommandHandler struct {
	parcelGateway ParcelCreator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
func NewCreateParcelCommandHandler(parcelGateway ParcelCreator) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		parcelGateway: parcelGateway,
	}
}

// Handle processes the parcel creation command.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.parcelGateway.Create(ctx, cmd.Draft())
}
