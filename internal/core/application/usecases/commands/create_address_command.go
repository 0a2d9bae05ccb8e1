package commands

import (
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to persist a new address with the
// shipping service.
//
// Example:
//
//	cmd, err := NewCreateAddressCommand(address.Draft{
//	    Street1: "179 N Harbor Dr",
//	    City:    "Redondo Beach",
//	    Zip:     "90277",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid address data: %w", err)
//	}
//
//	handler := NewCreateAddressCommandHandler(gateway)
//	persisted, err := handler.Handle(ctx, cmd)
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	draft address.Draft

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to persist a new address.
// Validates the draft before any network traffic can happen.
func NewCreateAddressCommand(draft address.Draft) (CreateAddressCommand, error) {
	addressCommand := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := addressCommand.setDraft(draft); err != nil {
		return CreateAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAddressCommandIsNotConstructed if validation fails.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// Draft returns the address draft to persist.
func (c CreateAddressCommand) Draft() address.Draft {
	return c.draft
}

func (c *CreateAddressCommand) setDraft(draft address.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}
