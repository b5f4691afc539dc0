package nearcli

import (
	"strings"

	"unrealctl/internal/config"
)

// External binaries. Deployment goes through the cargo-near plugin; account
// administration and queries go through the near CLI.
const (
	deployBin = "cargo"
	adminBin  = "near"
)

// initMethod is the contract initializer invoked right after deployment. Both
// contracts expose it and take no arguments at deploy time.
const (
	initMethod = "new"
	initArgs   = "{}"
)

// subaccountBalance is the fixed NEAR amount a new subaccount is funded with.
const subaccountBalance = "1"

// seedRedacted replaces the seed phrase when a command is rendered for logs.
const seedRedacted = "[redacted]"

// Command is a fully built invocation of an external tool. Commands are
// constructed fresh per call and never mutated afterwards.
type Command struct {
	// Op names the operation for error reporting, e.g. "deploy".
	Op string
	// Account is the target account, empty for account-less operations.
	Account string

	Bin  string
	Args []string
}

// Redacted renders the command for logging with the seed phrase masked. The
// seed follows the sign-with-seed-phrase argument; everything else is safe to
// print.
func (c Command) Redacted() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Bin)
	mask := false
	for _, arg := range c.Args {
		if mask {
			parts = append(parts, seedRedacted)
			mask = false
			continue
		}
		parts = append(parts, arg)
		if arg == "sign-with-seed-phrase" {
			mask = true
		}
	}
	return strings.Join(parts, " ")
}

// Deploy builds and deploys the contract artifact to account, then calls its
// initializer with empty arguments, signing with the configured seed phrase.
func Deploy(acct string, cfg config.Config) Command {
	return Command{
		Op:      "deploy",
		Account: acct,
		Bin:     deployBin,
		Args: []string{
			"near", "deploy",
			"build-non-reproducible-wasm",
			acct,
			"with-init-call", initMethod,
			"json-args", initArgs,
			"prepaid-gas", cfg.GasBudget,
			"attached-deposit", cfg.AttachedDeposit,
			"network-config", cfg.Network,
			"sign-with-seed-phrase", cfg.SeedPhrase,
			"send",
		},
	}
}

// CreateSubaccount requests creation of acct as a child of master with the
// fixed initial balance and hardware-key signing disabled.
func CreateSubaccount(acct, master string, cfg config.Config) Command {
	return Command{
		Op:      "create-subaccount",
		Account: acct,
		Bin:     adminBin,
		Args: []string{
			"create-account", acct,
			"--masterAccount", master,
			"--initialBalance", subaccountBalance,
			"--useLedgerKey=false",
			"--networkId", cfg.Network,
		},
	}
}

// State requests a read-only state dump for acct.
func State(acct string, cfg config.Config) Command {
	return Command{
		Op:      "state",
		Account: acct,
		Bin:     adminBin,
		Args: []string{
			"state", acct,
			"--networkId", cfg.Network,
		},
	}
}

// Login starts the CLI's interactive wallet authentication flow.
func Login(cfg config.Config) Command {
	return Command{
		Op:  "login",
		Bin: adminBin,
		Args: []string{
			"login",
			"--walletUrl", cfg.WalletURL,
			"--networkId", cfg.Network,
		},
	}
}
