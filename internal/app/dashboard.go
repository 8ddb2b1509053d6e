package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"weatherdash.app/internal/adapters/cli"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/adapters/storage"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
)

// DashboardApplication is the terminal client: manager, persisted state and REPL
type DashboardApplication struct {
	config  *config.DashboardConfig
	store   storage.Store
	ports   *ports.DashboardPorts
	manager *dashboard.Manager
	repl    *cli.REPL
}

// DashboardOptions carries the terminal streams and test overrides
type DashboardOptions struct {
	In         io.Reader
	Out        io.Writer
	ShowPrompt bool
	Logger     ports.Logger
	// HTTPClient is used to reach the proxy when set
	HTTPClient external.HTTPClient
}

func NewDashboardApplication(opts DashboardOptions) (*DashboardApplication, error) {
	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		return nil, fmt.Errorf("load dashboard configuration: %w", err)
	}
	return NewDashboardApplicationWithConfig(cfg, opts)
}

func NewDashboardApplicationWithConfig(cfg *config.DashboardConfig, opts DashboardOptions) (*DashboardApplication, error) {
	logger := opts.Logger
	if logger == nil {
		logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	}

	store, err := storage.NewStoreFactory().CreateStore(&cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("create state store: %w", err)
	}
	slog.Info("State store initialized", "type", cfg.Store.Type.String(), "backend", store.Name())

	fetcher := external.NewProxyClientAdapter(external.ProxyClientParams{
		BaseURL: cfg.APIBaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Client:  opts.HTTPClient,
		Logger:  logger,
	})

	a := &DashboardApplication{
		config: cfg,
		store:  store,
		ports: &ports.DashboardPorts{
			Fetcher:    fetcher,
			StateStore: storage.NewStateStoreAdapter(store, logger),
			Storage:    store,
			Logger:     logger,
		},
	}

	a.manager, err = dashboard.NewManager(dashboard.ManagerDependencies{
		Fetcher: a.ports.Fetcher,
		Store:   a.ports.StateStore,
		Logger:  logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create dashboard manager: %w", err)
	}

	var pinger infrastructure.Pinger
	if p, ok := store.(infrastructure.Pinger); ok {
		pinger = p
	}
	health := infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		"store": infrastructure.NewStoreHealthChecker(store.Name(), pinger),
	})

	a.repl, err = cli.NewREPL(cli.REPLOptions{
		Dashboard:  a.manager,
		Locator:    fetcher,
		Health:     health,
		Logger:     logger,
		In:         opts.In,
		Out:        opts.Out,
		ShowPrompt: opts.ShowPrompt,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create REPL: %w", err)
	}

	return a, nil
}

// Run restores persisted state, optionally searches the caller's location and
// then reads commands until the user quits
func (a *DashboardApplication) Run(ctx context.Context) error {
	if err := a.manager.Load(ctx); err != nil {
		slog.Warn("Could not restore saved searches, new searches will not be saved", "error", err)
	}

	if a.config.AutoLocate {
		a.repl.AutoLocate(ctx)
	} else if len(a.manager.History()) > 0 {
		a.repl.Execute(ctx, "show")
	}

	return a.repl.Run(ctx)
}

func (a *DashboardApplication) Shutdown() error {
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close state store: %w", err)
	}
	return nil
}

// Manager returns the dashboard manager for testing
func (a *DashboardApplication) Manager() *dashboard.Manager {
	return a.manager
}
