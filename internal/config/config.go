package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Defaults for the optional settings. An explicit non-empty value from the
// environment or the override file always wins.
const (
	DefaultNetwork   = "testnet"
	DefaultGasBudget = "100.0 Tgas"
	DefaultDeposit   = "1 NEAR"
	DefaultWalletURL = "https://testnet.mynearwallet.com"

	// DefaultFile is the override file looked up in the working directory
	// when no --config path is given.
	DefaultFile = "unrealctl.yaml"
)

// ErrMissingConfig is returned when a required setting is absent from both the
// environment and the override file.
var ErrMissingConfig = errors.New("missing required config")

// Config holds every setting the deployment commands need. It is resolved once
// and read-only afterwards.
//
// SeedPhrase is a secret and must never be logged or echoed; nearcli redacts
// it when rendering commands.
type Config struct {
	AccountID       string `mapstructure:"account_id"`  // master wallet identity, e.g. alice.testnet
	SeedPhrase      string `mapstructure:"seed_phrase"` // Secret: seed phrase used for transaction signing
	Network         string `mapstructure:"network"`
	GasBudget       string `mapstructure:"gas_budget"`
	AttachedDeposit string `mapstructure:"deposit"`
	WalletURL       string `mapstructure:"wallet_url"`
}

// envBindings maps config keys to the environment variables that may supply
// them. Environment values shadow the override file.
var envBindings = map[string]string{
	"account_id":  "NEAR_ACCOUNT_ID",
	"seed_phrase": "NEAR_SEED_PHRASE",
	"network":     "NEAR_NETWORK",
	"gas_budget":  "NEAR_GAS_BUDGET",
	"deposit":     "NEAR_DEPOSIT",
	"wallet_url":  "NEAR_WALLET_URL",
}

// Resolve loads the configuration from the environment and the override file
// at path, applies defaults to unset optional settings, and validates that the
// required settings are present. If the file does not exist the environment
// alone is used.
func Resolve(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read override file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills every optional field that resolved empty. A setting that
// is present but empty counts as unset.
func (c Config) withDefaults() Config {
	if c.Network == "" {
		c.Network = DefaultNetwork
	}
	if c.GasBudget == "" {
		c.GasBudget = DefaultGasBudget
	}
	if c.AttachedDeposit == "" {
		c.AttachedDeposit = DefaultDeposit
	}
	if c.WalletURL == "" {
		c.WalletURL = DefaultWalletURL
	}
	return c
}

func (c Config) validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("%w: account_id (set NEAR_ACCOUNT_ID)", ErrMissingConfig)
	}
	if c.SeedPhrase == "" {
		return fmt.Errorf("%w: seed_phrase (set NEAR_SEED_PHRASE)", ErrMissingConfig)
	}
	return nil
}
