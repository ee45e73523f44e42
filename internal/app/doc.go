// Package app wires application dependencies for the CLI.
//
// LoadConfig resolves runtime options from defaults, the saved settings file
// and the environment. NewWire builds the HTTP client, repository, use cases
// and local stores from a Config, and App hands out screen state holders
// bound to those use cases.
package app
