package handlers

import (
	"context"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/imamik/intake/internal/form"
	"github.com/imamik/intake/internal/ui/prompt"
	"github.com/imamik/intake/internal/ui/tui"
)

// Factory function variables for new - can be replaced in tests.
var (
	runTUI = func(ctx context.Context, c *form.Controller) ([]form.Receipt, error) {
		return tui.Run(ctx, c)
	}

	runPrompt = func(ctx context.Context, c *form.Controller, accessible bool) ([]form.Receipt, error) {
		return prompt.Run(ctx, c, prompt.Options{
			Accessible: accessible,
			Input:      os.Stdin,
			Output:     os.Stderr,
		})
	}
)

// New runs an interactive session and prints a receipt for every request
// submitted in it.
func New(ctx context.Context, configPath string, flags *pflag.FlagSet) error {
	ctx, cfg, err := setup(ctx, configPath, flags)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, cfg)

	logger := logr.FromContextOrDiscard(ctx)
	c := form.NewController()
	interactive := isInteractiveTTY()

	var receipts []form.Receipt
	switch {
	case cfg.Renderer == "tui" && interactive:
		receipts, err = runTUI(ctx, c)
	default:
		if cfg.Renderer == "tui" {
			logger.Info("stdout is not a terminal, using the prompt renderer")
		}
		receipts, err = runPrompt(ctx, c, !interactive)
	}
	if err != nil {
		return err
	}

	if len(receipts) == 0 {
		logger.Info("session ended without a submitted request")
		return nil
	}
	return printReceipts(stdout, receipts, form.Format(cfg.Output))
}
