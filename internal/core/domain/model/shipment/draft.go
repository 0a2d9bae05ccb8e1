package shipment

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/customs"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
)

// Draft describes a shipment to be created. It references resources that were
// already persisted by the shipping service, so the request payload can carry
// their identifiers instead of repeating their fields.
//
// From, To and Parcel are required. CustomsInfo is only needed for
// international shipments. Options are passed to the service verbatim,
// without interpretation.
type Draft struct {
	From        *address.Address
	To          *address.Address
	Parcel      *parcel.Parcel
	CustomsInfo *customs.Info
	Options     map[string]string
}

// Validate checks that the draft references all required resources and that
// every referenced resource is properly constructed.
//
// Returns:
//   - error: nil if the draft is valid, joined validation errors otherwise
func (d Draft) Validate() error {
	return errors.Join(
		d.validateFrom(),
		d.validateTo(),
		d.validateParcel(),
		d.validateCustomsInfo(),
		d.validateOptions(),
	)
}

func (d Draft) validateFrom() error {
	if d.From == nil {
		return errs.NewValueIsRequiredError("from address")
	}
	if err := d.From.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("from address", err)
	}
	return nil
}

func (d Draft) validateTo() error {
	if d.To == nil {
		return errs.NewValueIsRequiredError("to address")
	}
	if err := d.To.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("to address", err)
	}
	return nil
}

func (d Draft) validateParcel() error {
	if d.Parcel == nil {
		return errs.NewValueIsRequiredError("parcel")
	}
	if err := d.Parcel.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcel", err)
	}
	return nil
}

func (d Draft) validateCustomsInfo() error {
	if d.CustomsInfo == nil {
		return nil
	}
	if err := d.CustomsInfo.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customs info", err)
	}
	return nil
}

func (d Draft) validateOptions() error {
	for key := range d.Options {
		if strings.TrimSpace(key) == "" {
			return errs.NewValueIsRequiredError("option key")
		}
	}
	return nil
}

func (d Draft) copyOptions() map[string]string {
	if d.Options == nil {
		return nil
	}
	out := make(map[string]string, len(d.Options))
	for key, value := range d.Options {
		out[key] = value
	}
	return out
}
