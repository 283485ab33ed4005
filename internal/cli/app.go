package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/adapters/libsql"
	otelexp "github.com/fairai-labs/fairctl/internal/adapters/otel"
	"github.com/fairai-labs/fairctl/internal/adapters/prompter"
	"github.com/fairai-labs/fairctl/internal/adapters/sessionfile"
	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/infrastructure/config"
	"github.com/fairai-labs/fairctl/internal/obs"
	"github.com/fairai-labs/fairctl/internal/ports"
)

// AppContext bundles the pieces every command needs.
type AppContext struct {
	Config   *config.Config
	Logger   *slog.Logger
	Sessions ports.SessionStore
	Client   *api.Client
	Prompt   ports.Prompter
}

func NewAppContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := obs.NewLogger(os.Stderr, cfg.Env, verbose)

	sessions, err := sessionfile.NewStore()
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	client := api.NewClient(cfg, sessions, logger)

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Client:   client,
		Prompt:   prompter.NewTTYPrompter(),
	}, nil
}

// newMetricsExporter returns the OTEL exporter when configured and a no-op
// one otherwise, so evaluations never fail because of telemetry.
func newMetricsExporter(ctx context.Context, logger *slog.Logger) ports.MetricsExporter {
	cfg, err := config.LoadOTEL()
	if err != nil || !cfg.Enabled {
		return otelexp.NewNoOpExporter()
	}
	exp, err := otelexp.NewExporter(ctx, cfg)
	if err != nil {
		logger.Debug("otel exporter unavailable, metrics disabled", "error", err)
		return otelexp.NewNoOpExporter()
	}
	return exp
}

// recordRun appends an evaluation to the local history database. History is
// best effort: a failure is logged, never surfaced as a command error.
func recordRun(ctx context.Context, app *AppContext, run *domain.EvaluationRun) {
	db, err := libsql.Open(ctx, app.Config.HistoryDB)
	if err != nil {
		app.Logger.Warn("history database unavailable, run not recorded", "error", err)
		return
	}
	defer db.Close()

	repo := libsql.NewRunRepository(db)
	if err := repo.Create(ctx, run); err != nil {
		app.Logger.Warn("recording run failed", "error", err, "run_id", run.ID)
	}
}

func fileSize(path string) int64 {
	if path == "" {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
