package services

// RateSelection tells the RateSelector which rate to pick from a shipment.
// Exactly one directive applies: the cheapest available rate, or the rate of
// a specific carrier service. The zero value carries no directive and is
// rejected by Select.
type RateSelection struct {
	lowest  bool
	service string
}

// LowestRate directs the selector to the cheapest available rate.
//
// Returns:
//   - RateSelection: Selection picking the rate with the lowest price
func LowestRate() RateSelection {
	return RateSelection{lowest: true}
}

// ServiceNamed directs the selector to the rate of the given carrier service.
// The match is exact and case sensitive: "priority" does not select
// "Priority".
//
// Parameters:
//   - service: Carrier service level to select, such as "Priority"
//
// Returns:
//   - RateSelection: Selection picking the first rate with that service
func ServiceNamed(service string) RateSelection {
	return RateSelection{service: service}
}

func (s RateSelection) isZero() bool {
	return s == RateSelection{}
}
