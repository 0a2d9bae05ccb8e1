// Package parcel provides the domain model for parcels managed by the remote
// shipping service.
//
// The package includes:
//   - Draft: The request-side measurements submitted when creating a parcel
//   - Parcel: The persisted resource carrying the service-assigned identifier
//
// Key business rules:
//   - Weight is always mandatory and must be positive
//   - Explicit dimensions are mandatory unless a predefined package is named
//   - A persisted Parcel always carries a valid service-assigned identifier
package parcel
