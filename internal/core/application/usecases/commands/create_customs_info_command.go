package commands

import (
	"errors"

	"shipping/internal/core/domain/model/customs"
	"shipping/internal/pkg/guard"
)

var ErrCreateCustomsInfoCommandIsNotConstructed = errors.New(
	"CreateCustomsInfoCommand must be created via NewCreateCustomsInfoCommand constructor",
)

// CreateCustomsInfoCommand represents a request to persist a customs
// declaration with the shipping service.
type CreateCustomsInfoCommand struct { //nolint:recvcheck //using for validation
	draft customs.Draft

	guard guard.ConstructorGuard
}

// NewCreateCustomsInfoCommand creates a command to persist a customs declaration.
// Validates the draft, including every declared item, before any network
// traffic can happen.
func NewCreateCustomsInfoCommand(draft customs.Draft) (CreateCustomsInfoCommand, error) {
	customsCommand := CreateCustomsInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customsCommand.setDraft(draft); err != nil {
		return CreateCustomsInfoCommand{}, err
	}

	return customsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomsInfoCommandIsNotConstructed if validation fails.
func (c CreateCustomsInfoCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomsInfoCommandIsNotConstructed)
}

// Draft returns the customs declaration draft to persist.
func (c CreateCustomsInfoCommand) Draft() customs.Draft {
	return c.draft
}

func (c *CreateCustomsInfoCommand) setDraft(draft customs.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}
