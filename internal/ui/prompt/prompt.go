// Package prompt is a line-oriented renderer for the service request wizard
// built on huh. It asks one step at a time and hands every answer to the
// controller, which decides whether the wizard moves on.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/imamik/intake/internal/form"
)

// Options controls how the prompts are drawn.
type Options struct {
	// Accessible asks plain line-by-line questions, for pipes and screen
	// readers.
	Accessible bool
	Input      io.Reader
	Output     io.Writer
}

// ask runs a screen. Tests replace it to answer without a terminal.
var ask = func(ctx context.Context, sc *Screen, opts Options) error {
	f := sc.Form().WithAccessible(opts.Accessible)
	if opts.Input != nil {
		f = f.WithInput(opts.Input)
	}
	if opts.Output != nil {
		f = f.WithOutput(opts.Output)
	}
	return f.RunWithContext(ctx)
}

// Run asks questions until the user quits and returns the receipts of every
// request submitted in the session.
func Run(ctx context.Context, c *form.Controller, opts Options) ([]form.Receipt, error) {
	var receipts []form.Receipt

	for {
		s := c.State()
		sc := NewScreen(s)

		if err := ask(ctx, sc, opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return receipts, nil
			}
			return receipts, fmt.Errorf("prompt failed: %w", err)
		}

		if s.Submitted {
			if !sc.Again {
				return receipts, nil
			}
			c.Reset(ctx)
			continue
		}

		for _, spec := range form.FieldsFor(s.Step) {
			if err := c.SetField(ctx, spec.Field, *sc.Values[spec.Field]); err != nil {
				return receipts, err
			}
		}

		switch sc.Action {
		case ActionPrevious:
			c.Previous(ctx)
		case ActionNext:
			c.Next(ctx)
		case ActionSubmit:
			if r, outcome := c.Submit(ctx); outcome == form.OutcomeMoved {
				receipts = append(receipts, r)
			}
		case ActionQuit:
			return receipts, nil
		}
	}
}
