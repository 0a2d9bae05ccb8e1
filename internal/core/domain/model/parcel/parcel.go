package parcel

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via RestoreParcel constructor")

// Draft holds the fields submitted to the shipping service when creating a parcel.
// Dimensions are in inches, weight in ounces. A parcel is described either by its
// explicit dimensions or by a carrier-defined PredefinedPackage; weight is
// mandatory in both cases.
type Draft struct {
	Length float64
	Width  float64
	Height float64
	Weight float64

	// PredefinedPackage names a carrier-defined package type (e.g. "FlatRateEnvelope").
	// When set, explicit dimensions are optional.
	PredefinedPackage string
}

// Validate checks the parcel measurements.
// Weight must always be positive. When no predefined package is named,
// length, width and height must be positive as well.
func (d Draft) Validate() error {
	out := []error{requirePositive("weight", d.Weight)}

	if d.PredefinedPackage == "" {
		out = append(out,
			requirePositive("length", d.Length),
			requirePositive("width", d.Width),
			requirePositive("height", d.Height),
		)
	}

	return errors.Join(out...)
}

// Parcel represents a parcel persisted by the shipping service.
// It always carries the identifier the service assigned on creation.
type Parcel struct {
	id    kernel.ResourceID
	draft Draft
	guard guard.ConstructorGuard
}

// RestoreParcel reconstructs a Parcel from the data the shipping service returned.
//
// Parameters:
//   - id: Identifier assigned by the service (must be valid)
//   - draft: The parcel measurements (must pass Draft validation)
//
// Returns:
//   - *Parcel: The persisted parcel
//   - error: Validation error if the identifier or measurements are invalid
func RestoreParcel(id kernel.ResourceID, draft Draft) (*Parcel, error) {
	parcel := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setDraft(draft),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// Validate checks if the Parcel was properly constructed via RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their service-assigned identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the identifier the shipping service assigned to this parcel.
func (p *Parcel) ID() kernel.ResourceID {
	return p.id
}

// Draft returns the parcel measurements as persisted by the service.
func (p *Parcel) Draft() Draft {
	return p.draft
}

func (p *Parcel) setID(id kernel.ResourceID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Parcel) setDraft(draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	p.draft = draft
	return nil
}

// requirePositive reports a measurement that is zero or negative.
func requirePositive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}
