package address

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via RestoreAddress constructor")

// Draft holds the fields submitted to the shipping service when creating an address.
// It is plain request data: fill in the exported fields and call Validate before use.
// Street1, City and Zip are mandatory; every other field is optional and omitted
// from the request when left empty.
//
// Example:
//
//	draft := address.Draft{
//	    Name:    "Dr. Steve Brule",
//	    Street1: "179 N Harbor Dr",
//	    City:    "Redondo Beach",
//	    State:   "CA",
//	    Zip:     "90277",
//	    Country: "US",
//	}
//	if err := draft.Validate(); err != nil {
//	    // Handle validation error
//	}
type Draft struct {
	Name    string
	Company string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
	Email   string
}

// Validate checks that all mandatory address fields are present.
// Returns an aggregated error naming every missing field.
func (d Draft) Validate() error {
	return errors.Join(
		requireField("street1", d.Street1),
		requireField("city", d.City),
		requireField("zip", d.Zip),
	)
}

// Address represents a postal address persisted by the shipping service.
// An Address always carries the identifier the service assigned on creation;
// an address without a remote identifier cannot exist in the domain model.
//
// Address follows these invariants:
//   - Must have a valid service-assigned identifier
//   - Field values must satisfy the Draft validation rules
//   - Can only be created through the RestoreAddress constructor
type Address struct {
	// id is the identifier assigned by the shipping service
	id kernel.ResourceID

	// draft holds the address fields as persisted by the service
	draft Draft

	// guard ensures the address was created via RestoreAddress
	guard guard.ConstructorGuard
}

// RestoreAddress reconstructs an Address from the data the shipping service returned.
// This is the only way to create an Address: the identifier comes from the service,
// never from local code.
//
// Parameters:
//   - id: Identifier assigned by the service (must be valid)
//   - draft: The address fields (must pass Draft validation)
//
// Returns:
//   - *Address: The persisted address
//   - error: Validation error if the identifier or fields are invalid
//
// Example:
//
//	id, _ := kernel.NewResourceID("adr_9c01")
//	addr, err := address.RestoreAddress(id, draft)
//	if err != nil {
//	    return fmt.Errorf("restoring address: %w", err)
//	}
func RestoreAddress(id kernel.ResourceID, draft Draft) (*Address, error) {
	addr := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setID(id),
		addr.setDraft(draft),
	); err != nil {
		return nil, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via RestoreAddress.
// Returns ErrAddressIsNotConstructed for nil or zero-value instances.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares two addresses by their service-assigned identifiers.
func (a *Address) IsEqual(other *Address) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// ID returns the identifier the shipping service assigned to this address.
func (a *Address) ID() kernel.ResourceID {
	return a.id
}

// Draft returns the address field values as persisted by the service.
func (a *Address) Draft() Draft {
	return a.draft
}

// setID sets the service-assigned identifier with validation.
func (a *Address) setID(id kernel.ResourceID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setDraft sets the address fields with validation.
func (a *Address) setDraft(draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	a.draft = draft
	return nil
}

// requireField reports a missing mandatory field by name.
func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
