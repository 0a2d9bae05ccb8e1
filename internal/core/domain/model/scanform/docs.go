// Package scanform contains the ScanForm read model.
//
// A scan form is produced by the shipping service to let a carrier accept a
// whole batch of packages with a single scan. The package only restores forms
// from response data; there is no draft or create path.
package scanform
