// Package app wires application dependencies for the CLI.
//
// It resolves configuration once at the entry boundary and builds the logger,
// runner, and orchestrator from it, exposing them via the App struct for
// commands to use. Nothing below this package reads the environment.
package app
