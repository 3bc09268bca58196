package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/imamik/intake/internal/config"
	"github.com/imamik/intake/internal/form"
	"github.com/imamik/intake/internal/logging"
)

// Factory function variables shared by all handlers - can be replaced in tests.
var (
	loadConfig = config.Load

	newLogger = logging.New

	writeMetrics = form.WriteMetrics

	// stdout receives receipts and validation reports.
	stdout io.Writer = os.Stdout

	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// setup loads the configuration and attaches a logger to ctx.
func setup(ctx context.Context, configPath string, flags *pflag.FlagSet) (context.Context, *config.Config, error) {
	cfg, err := loadConfig(configPath, flags)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.V(1).Info("configuration loaded",
		"renderer", cfg.Renderer, "output", cfg.Output, "metricsFile", cfg.MetricsFile)

	return logr.NewContext(ctx, logger), cfg, nil
}

// flushMetrics writes the metrics textfile when one is configured. Failures
// are logged and never change the command's result.
func flushMetrics(ctx context.Context, cfg *config.Config) {
	if cfg == nil || cfg.MetricsFile == "" {
		return
	}
	logger := logr.FromContextOrDiscard(ctx)
	if err := writeMetrics(cfg.MetricsFile); err != nil {
		logger.Error(err, "failed to write metrics", "path", cfg.MetricsFile)
		return
	}
	logger.V(1).Info("metrics written", "path", cfg.MetricsFile)
}
