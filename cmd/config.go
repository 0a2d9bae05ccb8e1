package cmd

import "time"

// Config carries the process configuration of the shipping CLI, read from the
// environment by cmd/app.
type Config struct {
	// EasyPostAPIKey authenticates against the shipping service. Empty is
	// tolerated until a command actually talks to the service.
	EasyPostAPIKey string

	// EasyPostAPIBase overrides the service endpoint, mainly for tests.
	// Empty selects the production API.
	EasyPostAPIBase string

	HTTPTimeout time.Duration
	LogLevel    string
}
