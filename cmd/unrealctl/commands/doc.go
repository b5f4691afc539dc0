// Package commands defines the unrealctl CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login               Authenticate the wallet through the browser flow
//   - create-subaccounts  Create the token and htlc subaccounts
//   - deploy              Build, deploy, and initialize a contract
//   - state               Show the on-chain state of one or all accounts
//   - accounts            Print the derived account set
//   - version             Print the build version
//
// # Implementation
//
// The root command resolves configuration and builds the dependency graph
// (logger, runner, orchestrator) before any subcommand runs, so handlers share
// one app context and only the resolver ever touches the environment.
package commands
