package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrCloneShipmentCommandIsNotConstructed = errors.New(
	"CloneShipmentCommand must be created via NewCloneShipmentCommand constructor",
)

// CloneShipmentCommand represents a request to create a new shipment from the
// defined fields of an existing one.
type CloneShipmentCommand struct { //nolint:recvcheck //using for validation
	shipment *shipment.Shipment

	guard guard.ConstructorGuard
}

// NewCloneShipmentCommand creates a command to clone an existing shipment.
func NewCloneShipmentCommand(shp *shipment.Shipment) (CloneShipmentCommand, error) {
	cloneCommand := CloneShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cloneCommand.setShipment(shp); err != nil {
		return CloneShipmentCommand{}, err
	}

	return cloneCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloneShipmentCommandIsNotConstructed if validation fails.
func (c CloneShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCloneShipmentCommandIsNotConstructed)
}

// Shipment returns the shipment to clone.
func (c CloneShipmentCommand) Shipment() *shipment.Shipment {
	return c.shipment
}

func (c *CloneShipmentCommand) setShipment(shp *shipment.Shipment) error {
	if err := shp.Validate(); err != nil {
		return err
	}

	c.shipment = shp
	return nil
}
