// Package nearcli builds argument vectors for the two external NEAR command
// line tools and runs them.
//
// Two binaries are involved: the cargo-near plugin handles build-and-deploy with
// an init call, and the near CLI handles account administration (interactive
// login, subaccount creation, state queries). This package only constructs
// arguments and interprets exit status; it never parses tool output.
package nearcli
