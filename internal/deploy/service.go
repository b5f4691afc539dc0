package deploy

import (
	"errors"
	"fmt"

	"unrealctl/internal/account"
	"unrealctl/internal/config"
	"unrealctl/internal/nearcli"
)

// Runner executes a built command and reports its exit status as an error.
type Runner interface {
	Run(nearcli.Command) error
	RunInteractive(nearcli.Command) error
}

// Service orchestrates the deployment operations. It holds only the resolved
// configuration and the derived account set; all state lives on the network.
type Service struct {
	cfg      config.Config
	accounts account.Set
	runner   Runner
}

// New returns a service for the account set derived from cfg's master
// identity.
func New(cfg config.Config, runner Runner) *Service {
	return &Service{
		cfg:      cfg,
		accounts: account.Derive(cfg.AccountID),
		runner:   runner,
	}
}

// Accounts returns the derived deployment targets.
func (s *Service) Accounts() account.Set { return s.accounts }

// Login starts the wallet's interactive authentication flow.
func (s *Service) Login() error {
	return s.runner.RunInteractive(nearcli.Login(s.cfg))
}

// Deploy builds and deploys the contract to acct with its init call. An empty
// acct targets the main account; explicit accounts are validated first.
func (s *Service) Deploy(acct string) error {
	acct, err := s.target(acct)
	if err != nil {
		return err
	}
	return s.runner.Run(nearcli.Deploy(acct, s.cfg))
}

// DeployMain deploys to the master account.
func (s *Service) DeployMain() error { return s.Deploy(s.accounts.Main) }

// DeployToken deploys to the token subaccount.
func (s *Service) DeployToken() error { return s.Deploy(s.accounts.Token) }

// DeployHTLC deploys to the HTLC subaccount.
func (s *Service) DeployHTLC() error { return s.Deploy(s.accounts.HTLC) }

// CreateSubaccounts creates the token subaccount and then the HTLC
// subaccount. The order is fixed and the sequence is fail-fast: if the first
// creation fails the second is not attempted.
func (s *Service) CreateSubaccounts() error {
	for _, acct := range []string{s.accounts.Token, s.accounts.HTLC} {
		if err := s.runner.Run(nearcli.CreateSubaccount(acct, s.accounts.Main, s.cfg)); err != nil {
			return err
		}
	}
	return nil
}

// State queries the on-chain state of acct, defaulting to the main account.
func (s *Service) State(acct string) error {
	acct, err := s.target(acct)
	if err != nil {
		return err
	}
	return s.runner.Run(nearcli.State(acct, s.cfg))
}

// AllStates queries main, token, and htlc in turn. Unlike CreateSubaccounts
// the queries are independent, so every account is attempted and failures are
// aggregated.
func (s *Service) AllStates() error {
	var errs []error
	for _, acct := range []string{s.accounts.Main, s.accounts.Token, s.accounts.HTLC} {
		if err := s.runner.Run(nearcli.State(acct, s.cfg)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// target resolves an optional account override, validating explicit values
// before anything is invoked.
func (s *Service) target(acct string) (string, error) {
	if acct == "" {
		return s.accounts.Main, nil
	}
	if err := account.Validate(acct); err != nil {
		return "", fmt.Errorf("account override: %w", err)
	}
	return acct, nil
}
