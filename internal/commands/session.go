package commands

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/logging"
	"github.com/cleared-dev/ledger/internal/render"
)

type globalOptions struct {
	configPath string
	envFile    string
}

// session is everything a command needs to work on one in-memory ledger.
type session struct {
	cfg      *config.Config
	engine   *ledger.Engine
	renderer *render.Renderer
	logger   *zap.Logger
}

// openSession loads configuration (file, then .env, then environment), the
// chart of accounts, and builds an empty ledger over it.
func openSession(opts *globalOptions) (*session, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(opts.envFile); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	chart, err := cfg.LoadChart(filepath.Dir(opts.configPath))
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}

	renderer, err := render.New(cfg.Display.Currency)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		engine:   ledger.New(chart, ledger.WithLogger(logger.Named("ledger"))),
		renderer: renderer,
		logger:   logger,
	}, nil
}

// terminal styles rendered markdown with the configured style.
func (s *session) terminal(md string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return render.Terminal(md, s.cfg.Display.Style)
}
