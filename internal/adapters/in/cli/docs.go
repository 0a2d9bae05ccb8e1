// Package cli is the inbound adapter exposing the shipping operations as a
// command line tool. Commands translate flags and arguments into use case
// commands, run the handlers and render the results for the terminal.
//
// Handlers are obtained through a HandlerProvider and only when a command
// actually talks to the shipping service, so local commands work without
// service credentials.
package cli
