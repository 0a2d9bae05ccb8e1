// Package label contains the Label read model produced by buying a shipment.
//
// Labels only come back from the shipping service, so the package restores
// them from response data and derives a stable local file name for the
// printable document.
package label
