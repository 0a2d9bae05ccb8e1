package shipment

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrRateIsNotConstructed is returned when using an improperly initialized Rate.
var ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")

// Rate is a priced shipping quote for a specific shipment. Rates are produced
// by the shipping service when a shipment is created and each one belongs to
// exactly one shipment. A rate is immutable once constructed.
type Rate struct {
	id         kernel.ResourceID
	shipmentID kernel.ResourceID
	carrier    string
	service    string
	price      kernel.Money
	guard      guard.ConstructorGuard
}

// NewRate creates a Rate from the data the shipping service quoted.
//
// Parameters:
//   - id: Identifier assigned to the rate by the service
//   - shipmentID: Identifier of the shipment this rate was quoted for
//   - carrier: Carrier offering the rate (e.g. "USPS")
//   - service: Carrier service level (e.g. "Priority")
//   - price: Quoted price
//
// Returns:
//   - Rate: The created rate
//   - error: Validation error if any field is invalid
func NewRate(
	id kernel.ResourceID,
	shipmentID kernel.ResourceID,
	carrier string,
	service string,
	price kernel.Money,
) (Rate, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		validateCarrier(carrier),
		validateService(service),
		price.Validate(),
	); err != nil {
		return Rate{}, err
	}

	return Rate{
		id:         id,
		shipmentID: shipmentID,
		carrier:    carrier,
		service:    service,
		price:      price,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func validateCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	return nil
}

func validateService(service string) error {
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}
	return nil
}

// Validate checks if the Rate was properly constructed via NewRate.
func (r Rate) Validate() error {
	return r.guard.Validate(ErrRateIsNotConstructed)
}

// ID returns the identifier the shipping service assigned to this rate.
func (r Rate) ID() kernel.ResourceID {
	return r.id
}

// ShipmentID returns the identifier of the shipment this rate belongs to.
func (r Rate) ShipmentID() kernel.ResourceID {
	return r.shipmentID
}

// Carrier returns the carrier offering the rate.
func (r Rate) Carrier() string {
	return r.carrier
}

// Service returns the carrier service level of the rate.
func (r Rate) Service() string {
	return r.service
}

// Price returns the quoted price.
func (r Rate) Price() kernel.Money {
	return r.price
}

// IsEqual compares two rates by identifier.
//
// Parameters:
//   - other: Rate to compare with
//
// Returns:
//   - bool: true if both rates carry the same identifier
func (r Rate) IsEqual(other Rate) bool {
	return r.id.IsEqual(other.id)
}
