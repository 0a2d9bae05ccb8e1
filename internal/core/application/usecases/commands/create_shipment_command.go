package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to persist a new shipment with
// the shipping service. The draft references previously persisted resources
// by identity, so the request payload stays flat.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(shipment.Draft{
//	    From:   fromAddress,
//	    To:     toAddress,
//	    Parcel: parcel,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(gateway)
//	persisted, err := handler.Handle(ctx, cmd)
//	// persisted carries the service id and the quoted rates
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	draft shipment.Draft

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to persist a new shipment.
// Validates the draft, including every referenced resource, before any
// network traffic can happen.
func NewCreateShipmentCommand(draft shipment.Draft) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentCommand.setDraft(draft); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Draft returns the shipment draft to persist.
func (c CreateShipmentCommand) Draft() shipment.Draft {
	return c.draft
}

func (c *CreateShipmentCommand) setDraft(draft shipment.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}
