// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping model. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RateSelector: A domain service resolving a selection directive against
//     the rates quoted for a shipment
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
