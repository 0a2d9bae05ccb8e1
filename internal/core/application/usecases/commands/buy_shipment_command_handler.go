package commands

import (
	"context"

	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/services"
)

// BuyShipmentCommandHandler handles the business logic for postage purchase.
// Resolves the rate selection against the shipment's quoted rates first, so
// missing or unmatched selections fail locally without a purchase request,
// then buys the resolved rate and returns the label the service produced.
// Failed purchases are not retried.
//
// Example:
//
//	handler := NewBuyShipmentCommandHandler(gateway)
//	cmd, _ := NewBuyShipmentCommand(shipment, services.ServiceNamed("Priority"))
//
//	label, err := handler.Handle(ctx, cmd)
//	var noMatch *services.NoMatchingRateError
//	switch {
//	case errors.Is(err, services.ErrRateSelectionIsRequired):
//	    // caller supplied no directive, nothing was sent
//	case errors.As(err, &noMatch):
//	    // directive matched none of shipment.Rates(), nothing was sent
//	case err != nil:
//	    // purchase round trip failed
//	default:
//	    fmt.Println("label document at", label.URL())
//	}
type BuyShipmentCommandHandler struct {
	shipmentGateway ShipmentBuyer
}

// NewBuyShipmentCommandHandler creates a handler for postage purchase operations.
func NewBuyShipmentCommandHandler(shipmentGateway ShipmentBuyer) BuyShipmentCommandHandler {
	return BuyShipmentCommandHandler{
		shipmentGateway: shipmentGateway,
	}
}

// Handle processes the postage purchase command.
// Selection happens before any network traffic; the purchase itself is a
// single round trip. The shipment and its rates are left untouched.
func (h BuyShipmentCommandHandler) Handle(ctx context.Context, cmd BuyShipmentCommand) (*label.Label, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	shp := cmd.Shipment()

	rate, err := services.NewRateSelector().Select(cmd.Selection(), shp.Rates())
	if err != nil {
		return nil, err
	}

	return h.shipmentGateway.Buy(ctx, shp.ID(), rate)
}
