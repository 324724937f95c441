package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emiliopalmerini/ufcompare/internal/adapters/csvfile"
	"github.com/emiliopalmerini/ufcompare/internal/adapters/logger"
	"github.com/emiliopalmerini/ufcompare/internal/adapters/otel"
	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/infrastructure/config"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
	"github.com/emiliopalmerini/ufcompare/internal/util"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Metrics ports.MetricsExporter
	Loader  ports.DatasetLoader
	Engine  *domain.Engine
}

// NewAppContext reads the configuration, loads the dataset and builds the engine.
// Query commands pass verbose=false so their stdout carries only results;
// they still log when UFC_LOG_FILE is set.
func NewAppContext(ctx context.Context, verbose bool) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	cfg.DataPath = util.ResolveDataPath(cfg.DataPath)

	var log ports.Logger = logger.NewNop()
	if verbose || cfg.Log.File != "" {
		log, err = logger.New(cfg.Log.Logger())
		if err != nil {
			return nil, err
		}
	}

	a := &AppContext{
		Config:  cfg,
		Logger:  log,
		Metrics: newMetricsExporter(ctx, cfg.Otel, log),
		Loader:  csvfile.NewLoader(cfg.DataPath),
	}

	start := time.Now()
	ds, err := a.Loader.Load(ctx)
	if err != nil {
		log.Error("failed to load dataset", "path", cfg.DataPath, "error", err)
		_ = a.Close(context.Background())
		return nil, err
	}
	took := time.Since(start)

	a.Metrics.RecordDatasetLoad(ctx, ds.Len(), took)
	log.Info("dataset loaded", "path", cfg.DataPath, "rows", ds.Len(), "columns", len(ds.Columns()), "took", took)

	a.Engine = domain.NewEngine(ds)
	return a, nil
}

// newMetricsExporter falls back to a no-op exporter when OTEL is off or unreachable.
func newMetricsExporter(ctx context.Context, cfg config.Otel, log ports.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg.Exporter())
	if err != nil {
		log.Warn("metrics export disabled", "error", err)
		return otel.NewNoOpExporter()
	}
	log.Info("metrics export enabled", "endpoint", cfg.Endpoint)
	return exp
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Metrics != nil {
		errs = append(errs, a.Metrics.Close(ctx))
	}
	if a.Logger != nil {
		errs = append(errs, a.Logger.Close())
	}
	return errors.Join(errs...)
}
