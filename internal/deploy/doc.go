// Package deploy sequences the deployment operations across the three
// contract accounts.
//
// Every operation is a terminal one-shot sequence of external tool
// invocations, issued strictly one at a time. Subaccount creation is
// fail-fast because deployment depends on it; state queries are best-effort
// because they are independent reads.
package deploy
