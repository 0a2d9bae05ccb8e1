package guard_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Weight struct {
		ounces float64
		unit   string
		guard  guard.ConstructorGuard
	}

	var errWeightNotConstructed = errors.New("Weight must be created via NewWeight")

	newWeight := func(ounces float64, unit string) (Weight, error) {
		if ounces < 0 {
			return Weight{}, errors.New("ounces cannot be negative")
		}
		if unit == "" {
			return Weight{}, errors.New("unit is required")
		}
		return Weight{
			ounces: ounces,
			unit:   unit,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	validateWeight := func(w Weight) error {
		return w.guard.Validate(errWeightNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		weight, err := newWeight(15.4, "oz")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateWeight(weight))
		assert.InDelta(t, 15.4, weight.ounces, 0.0001)
		assert.Equal(t, "oz", weight.unit)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var weight Weight // zero value

		// When
		err := validateWeight(weight)

		// Then
		// Zero value Weight has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errWeightNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test negative ounces
		_, err := newWeight(-1, "oz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ounces cannot be negative")

		// Test empty unit
		_, err = newWeight(15.4, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit is required")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errCarrierNotConstructed = errors.New("Carrier must be created via NewCarrier")

	// Define a guard-aware base type
	type guardedCarrier struct {
		guard guard.ConstructorGuard
	}

	newGuardedCarrier := func() guardedCarrier {
		return guardedCarrier{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedCarrier := func(g guardedCarrier) error {
		return g.guard.Validate(errCarrierNotConstructed)
	}

	// Define the actual domain object
	type Carrier struct {
		guardedCarrier
		code    string
		name    string
		account int
	}

	newCarrier := func(code, name string, account int) (Carrier, error) {
		if code == "" {
			return Carrier{}, errors.New("carrier code is required")
		}
		if name == "" {
			return Carrier{}, errors.New("carrier name is required")
		}
		if account < 0 {
			return Carrier{}, errors.New("carrier account cannot be negative")
		}
		return Carrier{
			guardedCarrier: newGuardedCarrier(),
			code:           code,
			name:           name,
			account:        account,
		}, nil
	}

	t.Run("valid_carrier_construction", func(t *testing.T) {
		// When
		carrier, err := newCarrier("usps", "USPS", 42)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedCarrier(carrier.guardedCarrier))
		assert.Equal(t, "usps", carrier.code)
		assert.Equal(t, "USPS", carrier.name)
		assert.Equal(t, 42, carrier.account)
	})

	t.Run("zero_value_carrier_fails_validation", func(t *testing.T) {
		// Given
		var carrier Carrier // zero value

		// When
		err := validateGuardedCarrier(carrier.guardedCarrier)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errCarrierNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "shipment_not_constructed_error",
			expectedError: errors.New("Shipment must be created via its constructor"),
		},
		{
			name:          "rate_not_constructed_error",
			expectedError: errors.New("Rate must be created via NewRate factory method"),
		},
		{
			name:          "label_not_constructed_error",
			expectedError: errors.New("Label requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
