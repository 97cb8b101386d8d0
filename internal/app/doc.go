// Package app wires application dependencies for the CLI.
//
// It validates the raw flag values once into domain.Options and builds the
// concrete services, exposing them via the App struct for commands to use.
package app
