// Package shipment contains the Shipment aggregate and its satellite types.
//
// The aggregate models the lifecycle the shipping service exposes: a Draft
// describes what to ship, the service persists it and answers with an
// identifier plus quoted Rates, and a later purchase turns one of those
// rates into a label. The aggregate enforces that every attached rate was
// quoted for this shipment and that callers never observe partially
// initialized state.
package shipment
