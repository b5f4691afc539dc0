// Package account derives the deployment accounts from the master wallet
// identity and validates explicit account references.
//
// The token and htlc subaccount prefixes are structural: each contract always
// lives on the same child of the master account, so the prefixes are constants
// rather than configuration.
package account
