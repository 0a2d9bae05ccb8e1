package kernel

import (
	"strings"

	"shipping/internal/pkg/errs"
)

// ErrResourceIDIsNotConstructed indicates that a ResourceID was not properly initialized
// through the NewResourceID constructor. This error is returned when validating a
// zero-value ResourceID.
var ErrResourceIDIsNotConstructed = errs.NewValueIsRequiredError(
	"resource id must be created via NewResourceID constructor")

// ResourceID is a value object that represents an identifier assigned by the
// remote shipping service. Identifiers are opaque strings ("shp_...", "adr_...",
// "rate_...") minted by the service when a resource is created; they are never
// generated locally.
//
// The zero value of ResourceID is invalid and must be constructed using
// NewResourceID. ResourceID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Wrap an identifier returned by the service
//	id, err := kernel.NewResourceID("shp_4f18b1e6")
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Shipment struct {
//	    id kernel.ResourceID
//	    // other fields...
//	}
type ResourceID struct {
	value string
}

// NewResourceID wraps an identifier string assigned by the remote service.
// The identifier must be non-empty after trimming whitespace; anything else
// is accepted verbatim since the service defines its own identifier scheme.
//
// Returns an error if the identifier is empty.
//
// Example:
//
//	id, err := kernel.NewResourceID("rate_55aa3f12")
//	if err != nil {
//	    return fmt.Errorf("invalid rate id: %w", err)
//	}
func NewResourceID(value string) (ResourceID, error) {
	if strings.TrimSpace(value) == "" {
		return ResourceID{}, errs.NewValueIsRequiredError("resource id")
	}

	return ResourceID{value: value}, nil
}

// String returns the identifier exactly as the remote service assigned it.
//
// This method is commonly used for:
//   - Building request paths ("/shipments/shp_4f18b1e6/buy")
//   - Referencing resources in request payloads
//   - Logging and debugging
//
// Example:
//
//	id, _ := kernel.NewResourceID("shp_4f18b1e6")
//	fmt.Printf("Created shipment %s\n", id.String())
func (id ResourceID) String() string {
	return id.value
}

// IsEqual compares two resource identifiers for equality.
// Returns true if both identifiers hold the same value, false otherwise.
//
// Example:
//
//	a, _ := kernel.NewResourceID("shp_1")
//	b, _ := kernel.NewResourceID("shp_1")
//	fmt.Println(a.IsEqual(b)) // true
func (id ResourceID) IsEqual(other ResourceID) bool {
	return id.value == other.value
}

// Validate checks if the ResourceID is properly constructed.
// Returns ErrResourceIDIsNotConstructed if the identifier is a zero value.
//
// This method is used by domain objects to reject identifiers that did not
// come from the remote service.
//
// Example:
//
//	func Restore(id kernel.ResourceID) (*Shipment, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
func (id ResourceID) Validate() error {
	if id.value == "" {
		return ErrResourceIDIsNotConstructed
	}
	return nil
}
