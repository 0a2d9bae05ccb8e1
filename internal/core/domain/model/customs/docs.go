// Package customs provides the domain model for customs declarations attached
// to international shipments.
//
// The package includes:
//   - Item: One declaration line (contents, quantity, value, origin)
//   - Draft: The request-side field set submitted when creating a declaration
//   - Info: The persisted declaration carrying the service-assigned identifier
//
// Key business rules:
//   - A declaration must contain at least one valid item
//   - A certified declaration must name its signer
//   - Item values use exact decimal semantics, never floating point
package customs
