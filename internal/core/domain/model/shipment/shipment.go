package shipment

import (
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/customs"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/scanform"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via RestoreShipment constructor")

// Shipment is the central aggregate of the model. It combines the draft the
// caller described (addresses, parcel, optional customs info, options) with
// the state the shipping service assigned: an identifier and the list of
// rates quoted for it.
//
// A shipment only exists in persisted form. The create flow submits a Draft
// to the service and restores the aggregate from the response, so there is no
// unpersisted Shipment value to misuse.
type Shipment struct {
	id       kernel.ResourceID
	draft    Draft
	rates    []Rate
	scanForm *scanform.ScanForm
	guard    guard.ConstructorGuard
}

// RestoreShipment reconstructs a Shipment from persisted service state.
//
// Parameters:
//   - id: Identifier assigned by the shipping service
//   - draft: Resources and options the shipment was created from
//   - rates: Rates the service quoted for the shipment
//
// Returns:
//   - *Shipment: The restored shipment
//   - error: Validation error if the identifier, draft or rates are invalid
func RestoreShipment(id kernel.ResourceID, draft Draft, rates []Rate) (*Shipment, error) {
	shipment := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setDraft(draft),
		shipment.setRates(rates),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

func (s *Shipment) setID(id kernel.ResourceID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Shipment) setDraft(draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	draft.Options = draft.copyOptions()
	s.draft = draft
	return nil
}

// setRates stores the quoted rates. A rate may only be attached to the
// shipment it was quoted for.
func (s *Shipment) setRates(rates []Rate) error {
	for _, rate := range rates {
		if err := rate.Validate(); err != nil {
			return err
		}
		if s.id.Validate() == nil && !rate.ShipmentID().IsEqual(s.id) {
			return errs.NewValueIsInvalidError("rate shipment id")
		}
	}

	s.rates = make([]Rate, len(rates))
	copy(s.rates, rates)
	return nil
}

// Validate checks if the Shipment was properly constructed via RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the identifier the shipping service assigned to this shipment.
func (s *Shipment) ID() kernel.ResourceID {
	return s.id
}

// From returns the sender address.
func (s *Shipment) From() *address.Address {
	return s.draft.From
}

// To returns the recipient address.
func (s *Shipment) To() *address.Address {
	return s.draft.To
}

// Parcel returns the physical package being shipped.
func (s *Shipment) Parcel() *parcel.Parcel {
	return s.draft.Parcel
}

// CustomsInfo returns the customs declaration, or nil for domestic shipments.
func (s *Shipment) CustomsInfo() *customs.Info {
	return s.draft.CustomsInfo
}

// Options returns the carrier options the shipment was created with.
// The returned map is a copy to prevent external modification.
func (s *Shipment) Options() map[string]string {
	return s.draft.copyOptions()
}

// Rates returns the rates the shipping service quoted for this shipment.
// The returned slice is a copy to prevent external modification.
func (s *Shipment) Rates() []Rate {
	out := make([]Rate, len(s.rates))
	copy(out, s.rates)
	return out
}

// ScanForm returns the scan form attached to this shipment, or nil if none
// was attached. Scan forms never travel back to the service in requests.
func (s *Shipment) ScanForm() *scanform.ScanForm {
	return s.scanForm
}

// AttachScanForm records the scan form the shipping service produced for
// this shipment.
//
// Parameters:
//   - form: Scan form to attach (must be valid)
//
// Returns:
//   - error: Validation error if the shipment or the form is not constructed
func (s *Shipment) AttachScanForm(form *scanform.ScanForm) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	s.scanForm = form
	return nil
}

// Draft returns the resources and options this shipment was created from.
// Cloning a shipment starts from this draft: the defined fields carry over
// while service-assigned state (identifier, rates, scan form) does not.
func (s *Shipment) Draft() Draft {
	draft := s.draft
	draft.Options = s.draft.copyOptions()
	return draft
}

// IsEqual compares two shipments by identifier.
//
// Parameters:
//   - other: Shipment to compare with
//
// Returns:
//   - bool: true if both shipments carry the same identifier
func (s *Shipment) IsEqual(other *Shipment) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}
