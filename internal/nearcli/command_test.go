package nearcli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrealctl/internal/config"
	"unrealctl/internal/nearcli"
)

func testConfig() config.Config {
	return config.Config{
		AccountID:       "alice.testnet",
		SeedPhrase:      "canyon robot violet swarm lobster",
		Network:         "testnet",
		GasBudget:       "100.0 Tgas",
		AttachedDeposit: "1 NEAR",
		WalletURL:       "https://testnet.mynearwallet.com",
	}
}

func TestDeploy(t *testing.T) {
	cfg := testConfig()
	cmd := nearcli.Deploy("alice.testnet", cfg)

	assert.Equal(t, "cargo", cmd.Bin)
	assert.Equal(t, []string{
		"near", "deploy",
		"build-non-reproducible-wasm",
		"alice.testnet",
		"with-init-call", "new",
		"json-args", "{}",
		"prepaid-gas", "100.0 Tgas",
		"attached-deposit", "1 NEAR",
		"network-config", "testnet",
		"sign-with-seed-phrase", cfg.SeedPhrase,
		"send",
	}, cmd.Args)
	assert.Equal(t, "deploy", cmd.Op)
	assert.Equal(t, "alice.testnet", cmd.Account)
}

func TestDeploy_SubaccountSharesParameters(t *testing.T) {
	cfg := testConfig()
	main := nearcli.Deploy("alice.testnet", cfg)
	token := nearcli.Deploy("token.alice.testnet", cfg)

	require.Equal(t, len(main.Args), len(token.Args))
	for i := range main.Args {
		if main.Args[i] == "alice.testnet" {
			assert.Equal(t, "token.alice.testnet", token.Args[i])
			continue
		}
		assert.Equal(t, main.Args[i], token.Args[i])
	}
}

func TestCreateSubaccount(t *testing.T) {
	cmd := nearcli.CreateSubaccount("token.alice.testnet", "alice.testnet", testConfig())

	assert.Equal(t, "near", cmd.Bin)
	assert.Equal(t, []string{
		"create-account", "token.alice.testnet",
		"--masterAccount", "alice.testnet",
		"--initialBalance", "1",
		"--useLedgerKey=false",
		"--networkId", "testnet",
	}, cmd.Args)
}

func TestState(t *testing.T) {
	cmd := nearcli.State("htlc.alice.testnet", testConfig())

	assert.Equal(t, "near", cmd.Bin)
	assert.Equal(t, []string{"state", "htlc.alice.testnet", "--networkId", "testnet"}, cmd.Args)
}

func TestLogin(t *testing.T) {
	cmd := nearcli.Login(testConfig())

	assert.Equal(t, "near", cmd.Bin)
	assert.Equal(t, []string{
		"login",
		"--walletUrl", "https://testnet.mynearwallet.com",
		"--networkId", "testnet",
	}, cmd.Args)
}

func TestRedacted_MasksSeedPhrase(t *testing.T) {
	cfg := testConfig()

	for _, cmd := range []nearcli.Command{
		nearcli.Deploy("alice.testnet", cfg),
		nearcli.CreateSubaccount("token.alice.testnet", "alice.testnet", cfg),
		nearcli.State("alice.testnet", cfg),
		nearcli.Login(cfg),
	} {
		rendered := cmd.Redacted()
		assert.NotContains(t, rendered, cfg.SeedPhrase, "seed leaked in %s", cmd.Op)
	}

	deploy := nearcli.Deploy("alice.testnet", cfg).Redacted()
	assert.True(t, strings.Contains(deploy, "sign-with-seed-phrase [redacted]"),
		"expected masked seed in %q", deploy)
}
