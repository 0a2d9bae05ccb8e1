package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/guard"
)

var ErrBuyShipmentCommandIsNotConstructed = errors.New(
	"BuyShipmentCommand must be created via NewBuyShipmentCommand constructor",
)

// BuyShipmentCommand represents a request to purchase postage for a shipment.
// The selection names which of the shipment's quoted rates to buy; resolving
// it is the handler's job, so a selection that matches nothing never reaches
// the shipping service.
//
// Example:
//
//	cmd, err := NewBuyShipmentCommand(shipment, services.LowestRate())
//	if err != nil {
//	    return fmt.Errorf("invalid purchase request: %w", err)
//	}
//
//	handler := NewBuyShipmentCommandHandler(gateway)
//	label, err := handler.Handle(ctx, cmd)
type BuyShipmentCommand struct { //nolint:recvcheck //using for validation
	shipment  *shipment.Shipment
	selection services.RateSelection

	guard guard.ConstructorGuard
}

// NewBuyShipmentCommand creates a command to purchase postage for a shipment.
// Validates the shipment; the selection directive is resolved later by the
// handler against the shipment's rates.
func NewBuyShipmentCommand(shp *shipment.Shipment, selection services.RateSelection) (BuyShipmentCommand, error) {
	buyCommand := BuyShipmentCommand{
		selection: selection,
		guard:     guard.NewConstructorGuard(),
	}

	if err := buyCommand.setShipment(shp); err != nil {
		return BuyShipmentCommand{}, err
	}

	return buyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBuyShipmentCommandIsNotConstructed if validation fails.
func (c BuyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBuyShipmentCommandIsNotConstructed)
}

// Shipment returns the shipment to purchase postage for.
func (c BuyShipmentCommand) Shipment() *shipment.Shipment {
	return c.shipment
}

// Selection returns the directive naming the rate to buy.
func (c BuyShipmentCommand) Selection() services.RateSelection {
	return c.selection
}

func (c *BuyShipmentCommand) setShipment(shp *shipment.Shipment) error {
	if err := shp.Validate(); err != nil {
		return err
	}

	c.shipment = shp
	return nil
}
