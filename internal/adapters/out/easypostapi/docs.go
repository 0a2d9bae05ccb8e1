// Package easypostapi implements the outbound gateways against the shipping
// service's HTTP API. Requests are authenticated form posts carrying the flat
// bracketed key convention the service expects; responses are JSON documents
// mapped back into domain aggregates through their Restore constructors.
//
// The package is the only place that knows about wire formats. Domain code
// sees gateways returning fully constructed aggregates or typed errors.
package easypostapi
