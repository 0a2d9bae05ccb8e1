package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// centsPerUnit is the number of cents in one currency unit.
const centsPerUnit = 100

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoneyFromString or NewMoneyFromCents constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromString or NewMoneyFromCents constructors")

// Money represents a non-negative monetary amount with exact decimal semantics.
// The amount is stored as an integer number of cents, so comparison and equality
// never go through floating point. Money is an immutable value object; the zero
// value is invalid and will fail validation - use constructors to create instances.
//
// The shipping service quotes prices as decimal strings ("5.00", "17.85").
// NewMoneyFromString parses exactly that wire form, and String renders it back
// with exactly two fraction digits.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("5.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: 5.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoneyFromString parses a Money value from its decimal string representation.
// The input must be a non-negative decimal number with at most two fraction digits.
// Amounts with more than two fraction digits are rejected rather than rounded,
// since silently changing a quoted price would corrupt rate comparison.
//
// Parameters:
//   - value: The decimal string to parse (e.g. "5", "5.4", "5.40")
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the input is empty, negative, or malformed
//
// Example:
//
//	price, err := NewMoneyFromString("17.85")
//	if err != nil {
//	    log.Fatal("Invalid price:", err)
//	}
//	fmt.Println(price.Cents()) // 1785
func NewMoneyFromString(value string) (Money, error) {
	cents, err := parseCents(value)
	if err != nil {
		return Money{}, err
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromCents creates a Money value directly from an integer number of cents.
// The amount must be non-negative.
//
// Parameters:
//   - cents: The amount in cents (e.g. 500 for "5.00")
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if cents is negative
//
// Example:
//
//	price, err := NewMoneyFromCents(500)
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
//	fmt.Println(price.String()) // "5.00"
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%d cents is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount as an integer number of cents.
//
// Example:
//
//	price, _ := NewMoneyFromString("5.40")
//	cents := price.Cents() // 540
func (m Money) Cents() int64 {
	return m.cents
}

// String returns the decimal representation of the amount with exactly two
// fraction digits, matching the wire format of the shipping service.
// This method implements the fmt.Stringer interface.
//
// Example:
//
//	price, _ := NewMoneyFromCents(540)
//	fmt.Println(price.String()) // Output: 5.40
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/centsPerUnit, m.cents%centsPerUnit)
}

// Less reports whether this amount is strictly smaller than the other.
// Both amounts must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if this amount is strictly smaller, false otherwise
//   - error: Validation error if either amount is improperly constructed
//
// Example:
//
//	cheap, _ := NewMoneyFromString("5.00")
//	pricey, _ := NewMoneyFromString("7.25")
//
//	less, err := cheap.Less(pricey)
//	// less = true, err = nil
func (m Money) Less(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.cents < other.cents, nil
}

// IsEqual compares two amounts for equality.
// Both amounts must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if the amounts are equal, false otherwise
//   - error: Validation error if either amount is improperly constructed
//
// Example:
//
//	a, _ := NewMoneyFromString("5.4")
//	b, _ := NewMoneyFromString("5.40")
//
//	equal, err := a.IsEqual(b)
//	// equal = true, err = nil
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.cents == other.cents, nil
}

// parseCents converts a decimal string into cents.
// Accepts a whole part with an optional fraction of one or two digits.
func parseCents(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errs.NewValueIsRequiredError("money")
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%q is negative", value))
	}

	whole, frac, hasFrac := strings.Cut(trimmed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", err)
	}

	cents := units * centsPerUnit
	if !hasFrac {
		return cents, nil
	}

	if len(frac) == 0 || len(frac) > 2 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%q must have one or two fraction digits", value))
	}
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"money", fmt.Errorf("%q has a non-digit fraction", value))
		}
	}

	fracValue, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	if len(frac) == 1 {
		fracValue *= 10
	}

	return cents + fracValue, nil
}
