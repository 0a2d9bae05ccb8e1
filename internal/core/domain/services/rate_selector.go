package services

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/shipment"
)

// ErrRateSelectionIsRequired is returned when Select is called without a
// directive. Callers are expected to check this before issuing any purchase
// traffic: a shipment purchase with no selector must fail locally.
var ErrRateSelectionIsRequired = errors.New("missing rate or service selector")

// ErrNoMatchingRate is returned when a directive matches none of the rates
// quoted for the shipment.
var ErrNoMatchingRate = errors.New("no matching rate")

// NoMatchingRateError reports that a selection directive matched none of the
// available rates. It keeps the full quoted list so callers can present the
// valid alternatives.
type NoMatchingRateError struct {
	Rates []shipment.Rate
}

// NewNoMatchingRateError creates a NoMatchingRateError over the rates that
// were available at selection time.
func NewNoMatchingRateError(rates []shipment.Rate) *NoMatchingRateError {
	return &NoMatchingRateError{Rates: rates}
}

// Error enumerates every available (service, price) pair, with service names
// left justified to the widest name and prices rendered with two decimals.
func (e *NoMatchingRateError) Error() string {
	return fmt.Sprintf("%s: available rates are %s", ErrNoMatchingRate, e.enumerateRates())
}

func (e *NoMatchingRateError) Unwrap() error {
	return ErrNoMatchingRate
}

func (e *NoMatchingRateError) enumerateRates() string {
	if len(e.Rates) == 0 {
		return "none"
	}

	width := 0
	for _, rate := range e.Rates {
		if len(rate.Service()) > width {
			width = len(rate.Service())
		}
	}

	pairs := make([]string, 0, len(e.Rates))
	for _, rate := range e.Rates {
		pairs = append(pairs, fmt.Sprintf("%-*s %s", width, rate.Service(), rate.Price().String()))
	}

	return strings.Join(pairs, ", ")
}

// RateSelector is a domain service that resolves a RateSelection directive
// against the rates quoted for a shipment.
//
// Business rules:
//   - A directive is mandatory; selection without one fails before any
//     network traffic can happen
//   - The lowest-rate directive picks the strictly cheapest rate, keeping
//     the first encountered on price ties
//   - The service directive picks the first rate whose service matches
//     exactly, case sensitive
//   - A directive with no match reports every available alternative
//
// Example usage:
//
//	selector := services.NewRateSelector()
//	rate, err := selector.Select(services.LowestRate(), shipment.Rates())
//	var noMatch *services.NoMatchingRateError
//	if errors.As(err, &noMatch) {
//	    // noMatch.Rates holds the valid alternatives
//	    return
//	}
type RateSelector struct{}

// NewRateSelector creates a new RateSelector instance.
//
// Returns:
//   - RateSelector: A new instance ready for rate selection
func NewRateSelector() RateSelector {
	return RateSelector{}
}

// Select resolves the directive against the quoted rates.
//
// Parameters:
//   - selection: Directive naming the rate to pick (must not be zero)
//   - rates: Rates quoted for the shipment
//
// Returns:
//   - shipment.Rate: The selected rate
//   - error: ErrRateSelectionIsRequired without a directive,
//     NoMatchingRateError when nothing matches, or a validation error for
//     improperly constructed rates
func (rs RateSelector) Select(selection RateSelection, rates []shipment.Rate) (shipment.Rate, error) {
	if selection.isZero() {
		return shipment.Rate{}, ErrRateSelectionIsRequired
	}

	for _, rate := range rates {
		if err := rate.Validate(); err != nil {
			return shipment.Rate{}, err
		}
	}

	if selection.lowest {
		return rs.findLowestRate(rates)
	}

	return rs.findServiceRate(selection.service, rates)
}

// findLowestRate scans for the cheapest rate in a single forward pass.
// Strict comparison keeps the first rate on ties.
func (rs RateSelector) findLowestRate(rates []shipment.Rate) (shipment.Rate, error) {
	var (
		best  shipment.Rate
		found bool
	)

	for _, rate := range rates {
		if !found {
			best = rate
			found = true
			continue
		}

		cheaper, err := rate.Price().Less(best.Price())
		if err != nil {
			return shipment.Rate{}, err
		}

		if cheaper {
			best = rate
		}
	}

	if !found {
		return shipment.Rate{}, NewNoMatchingRateError(rates)
	}

	return best, nil
}

func (rs RateSelector) findServiceRate(service string, rates []shipment.Rate) (shipment.Rate, error) {
	for _, rate := range rates {
		if rate.Service() == service {
			return rate, nil
		}
	}

	return shipment.Rate{}, NewNoMatchingRateError(rates)
}
