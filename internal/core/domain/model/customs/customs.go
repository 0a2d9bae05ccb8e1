package customs

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for customs declarations.
var (
	// ErrCustomsInfoIsNotConstructed is returned when using an improperly initialized Info.
	ErrCustomsInfoIsNotConstructed = errors.New("customs Info must be created via RestoreCustomsInfo constructor")
	// ErrItemsAreRequired is returned when a declaration is built without any items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("customs items")
	// ErrSignerIsRequired is returned when a certified declaration names no signer.
	ErrSignerIsRequired = errs.NewValueIsRequiredError("customs signer")
)

// Item describes one line of a customs declaration: what is in the parcel,
// how much of it, and what it is worth. Value uses exact Money semantics since
// it travels to the service as a decimal string.
type Item struct {
	Description    string
	Quantity       int
	Value          kernel.Money
	Weight         float64
	HSTariffNumber string
	OriginCountry  string
}

// Validate checks a single declaration line.
// Description, a positive quantity and weight, a constructed value and the
// origin country are all mandatory; the tariff number is optional.
func (i Item) Validate() error {
	out := make([]error, 0, 5)

	if i.Description == "" {
		out = append(out, errs.NewValueIsRequiredError("description"))
	}
	if i.Quantity <= 0 {
		out = append(out, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", i.Quantity)))
	}
	if err := i.Value.Validate(); err != nil {
		out = append(out, errs.NewValueIsRequiredErrorWithCause("value", err))
	}
	if i.Weight <= 0 {
		out = append(out, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", i.Weight)))
	}
	if i.OriginCountry == "" {
		out = append(out, errs.NewValueIsRequiredError("origin country"))
	}

	return errors.Join(out...)
}

// Draft holds the fields submitted to the shipping service when creating a
// customs declaration for an international shipment.
type Draft struct {
	// CustomsCertify states that the declaration is certified by CustomsSigner.
	CustomsCertify bool
	CustomsSigner  string

	// ContentsType classifies the shipment contents (e.g. "merchandise", "gift").
	ContentsType        string
	ContentsExplanation string
	RestrictionType     string

	// EELPFC is the export filing citation or exemption (e.g. "NOEEI 30.37(a)").
	EELPFC string

	Items []Item
}

// Validate checks the declaration as a whole.
// At least one item is mandatory and every item must be valid. A certified
// declaration must name its signer, and the contents classification is required.
func (d Draft) Validate() error {
	out := make([]error, 0, len(d.Items)+3)

	if len(d.Items) == 0 {
		out = append(out, ErrItemsAreRequired)
	}
	for _, item := range d.Items {
		if err := item.Validate(); err != nil {
			out = append(out, err)
		}
	}
	if d.CustomsCertify && d.CustomsSigner == "" {
		out = append(out, ErrSignerIsRequired)
	}
	if d.ContentsType == "" {
		out = append(out, errs.NewValueIsRequiredError("contents type"))
	}

	return errors.Join(out...)
}

// Info represents a customs declaration persisted by the shipping service.
// It always carries the identifier the service assigned on creation.
type Info struct {
	id    kernel.ResourceID
	draft Draft
	guard guard.ConstructorGuard
}

// RestoreCustomsInfo reconstructs a customs declaration from the data the
// shipping service returned.
//
// Parameters:
//   - id: Identifier assigned by the service (must be valid)
//   - draft: The declaration fields (must pass Draft validation)
//
// Returns:
//   - *Info: The persisted declaration
//   - error: Validation error if the identifier or fields are invalid
func RestoreCustomsInfo(id kernel.ResourceID, draft Draft) (*Info, error) {
	info := &Info{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setID(id),
		info.setDraft(draft),
	); err != nil {
		return nil, err
	}

	return info, nil
}

// Validate checks if the Info was properly constructed via RestoreCustomsInfo.
func (ci *Info) Validate() error {
	if ci == nil {
		return ErrCustomsInfoIsNotConstructed
	}
	return ci.guard.Validate(ErrCustomsInfoIsNotConstructed)
}

// IsEqual compares two declarations by their service-assigned identifiers.
func (ci *Info) IsEqual(other *Info) bool {
	if other == nil {
		return false
	}
	return ci.id.IsEqual(other.id)
}

// ID returns the identifier the shipping service assigned to this declaration.
func (ci *Info) ID() kernel.ResourceID {
	return ci.id
}

// Draft returns the declaration fields as persisted by the service.
// The returned items slice is a copy to prevent external modification.
func (ci *Info) Draft() Draft {
	draft := ci.draft
	draft.Items = make([]Item, len(ci.draft.Items))
	copy(draft.Items, ci.draft.Items)
	return draft
}

func (ci *Info) setID(id kernel.ResourceID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	ci.id = id
	return nil
}

func (ci *Info) setDraft(draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	ci.draft = draft
	ci.draft.Items = make([]Item, len(draft.Items))
	copy(ci.draft.Items, draft.Items)
	return nil
}
