// Package commands defines the userdeck CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list      Print the first pages of users
//   - browse    Page through users interactively, refresh and delete
//   - show      Print one user
//   - create    Create a user from flags
//   - edit      Change a user's fields
//   - delete    Delete a user after confirmation
//   - login     Save the service app-id encrypted under a passphrase
//   - logout    Forget the saved app-id
//   - config    Print the resolved configuration or save it as settings
//
// # Implementation
//
// The root command resolves configuration (settings file, environment,
// flags), unlocks a saved app-id when a passphrase is given and builds the
// dependency graph before any subcommand runs. Each subcommand drives the
// same screen state holders a graphical front-end would, so list paging,
// optimistic deletes and form validation behave identically here.
package commands
