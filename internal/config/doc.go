// Package config resolves the deployment settings for unrealctl.
//
// Settings come from three layers with fixed precedence: process environment
// variables win over the optional local override file, which wins over the
// documented defaults. The override file is optional; its absence is never an
// error. Resolution happens once at the program's entry boundary — no other
// package reads the environment.
package config
