package guard_test

import (
	"errors"
	"testing"

	"expeditor/internal/pkg/guard"

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
// in a domain object to enforce constructor usage. The pattern mirrors the
// command and query structs of the use case layer.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample value object that uses ConstructorGuard
	type TimingWindow struct {
		menuName        string
		standardSeconds int
		guard           guard.ConstructorGuard
	}

	var errTimingWindowNotConstructed = errors.New("TimingWindow must be created via NewTimingWindow")

	newTimingWindow := func(menuName string, standardSeconds int) (TimingWindow, error) {
		if menuName == "" {
			return TimingWindow{}, errors.New("menu name is required")
		}
		if standardSeconds <= 0 {
			return TimingWindow{}, errors.New("standard seconds must be positive")
		}
		return TimingWindow{
			menuName:        menuName,
			standardSeconds: standardSeconds,
			guard:           guard.NewConstructorGuard(),
		}, nil
	}

	validateTimingWindow := func(w TimingWindow) error {
		return w.guard.Validate(errTimingWindowNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		window, err := newTimingWindow("Margherita", 60)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateTimingWindow(window))
		assert.Equal(t, "Margherita", window.menuName)
		assert.Equal(t, 60, window.standardSeconds)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var window TimingWindow // zero value

		// When
		err := validateTimingWindow(window)

		// Then
		// Zero value has a zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errTimingWindowNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test empty menu name
		_, err := newTimingWindow("", 60)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "menu name is required")

		// Test non-positive standard
		_, err = newTimingWindow("Margherita", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "standard seconds must be positive")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errTicketNotConstructed = errors.New("Ticket must be created via NewTicket")

	// Define a guard-aware base type
	type guardedTicket struct {
		guard guard.ConstructorGuard
	}

	newGuardedTicket := func() guardedTicket {
		return guardedTicket{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedTicket := func(g guardedTicket) error {
		return g.guard.Validate(errTicketNotConstructed)
	}

	// Define the actual domain object
	type Ticket struct {
		guardedTicket
		displayID string
		station   string
		covers    int
	}

	newTicket := func(displayID, station string, covers int) (Ticket, error) {
		if displayID == "" {
			return Ticket{}, errors.New("ticket display ID is required")
		}
		if station == "" {
			return Ticket{}, errors.New("ticket station is required")
		}
		if covers <= 0 {
			return Ticket{}, errors.New("ticket covers must be positive")
		}
		return Ticket{
			guardedTicket: newGuardedTicket(),
			displayID:     displayID,
			station:       station,
			covers:        covers,
		}, nil
	}

	t.Run("valid_ticket_construction", func(t *testing.T) {
		// When
		ticket, err := newTicket("A-17", "kitchen", 4)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedTicket(ticket.guardedTicket))
		assert.Equal(t, "A-17", ticket.displayID)
		assert.Equal(t, "kitchen", ticket.station)
		assert.Equal(t, 4, ticket.covers)
	})

	t.Run("zero_value_ticket_fails_validation", func(t *testing.T) {
		// Given
		var ticket Ticket // zero value

		// When
		err := validateGuardedTicket(ticket.guardedTicket)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errTicketNotConstructed, err)
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
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder constructor"),
		},
		{
			name:          "menu_item_not_constructed_error",
			expectedError: errors.New("MenuItem must be created via NewMenuItem constructor"),
		},
		{
			name:          "cooking_log_not_constructed_error",
			expectedError: errors.New("CookingLog must be created via NewCookingLog constructor"),
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
