package app

import (
	"go.uber.org/zap"

	"unrealctl/internal/config"
	"unrealctl/internal/deploy"
	"unrealctl/internal/logging"
	"unrealctl/internal/nearcli"
)

// Options holds runtime wiring options for building the app.
type Options struct {
	ConfigPath string // override file path, e.g. ./unrealctl.yaml
	Verbose    bool   // include debug entries and captured tool output
}

// App bundles the resolved configuration and the orchestrator for the CLI.
type App struct {
	Config   config.Config
	Deployer *deploy.Service
	Log      *zap.SugaredLogger
}

// New constructs the dependency graph from opts.
func New(opts Options) (*App, error) {
	log, err := logging.New(opts.Verbose)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	runner := nearcli.NewRunner(log)

	return &App{
		Config:   cfg,
		Deployer: deploy.New(cfg, runner),
		Log:      log,
	}, nil
}
