package commands

import (
	"errors"

	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to persist a new parcel with the
// shipping service.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	draft parcel.Draft

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to persist a new parcel.
// Validates the draft before any network traffic can happen.
func NewCreateParcelCommand(draft parcel.Draft) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelCommand.setDraft(draft); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Draft returns the parcel draft to persist.
func (c CreateParcelCommand) Draft() parcel.Draft {
	return c.draft
}

func (c *CreateParcelCommand) setDraft(draft parcel.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}
