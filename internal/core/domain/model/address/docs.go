// Package address provides the domain model for postal addresses managed by the
// remote shipping service.
//
// The package includes:
//   - Draft: The request-side field set submitted when creating an address
//   - Address: The persisted resource carrying the service-assigned identifier
//
// Key business rules:
//   - Street1, City and Zip are mandatory; other fields are optional
//   - A persisted Address always carries a valid service-assigned identifier
//   - Addresses are referenced by identifier when embedded in shipment requests
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package address
