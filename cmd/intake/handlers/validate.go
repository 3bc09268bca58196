package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/imamik/intake/internal/form"
)

// Validate checks the fields of a single step, given as field=value pairs,
// and prints the resulting error map.
func Validate(ctx context.Context, step int, sets []string, configPath string, flags *pflag.FlagSet) error {
	ctx, cfg, err := setup(ctx, configPath, flags)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, cfg)

	s, err := form.GoTo(form.New(), form.Step(step))
	if err != nil {
		return err
	}

	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected field=value", set)
		}
		f, err := form.ParseField(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if s, err = form.SetField(s, f, value); err != nil {
			return err
		}
	}

	c := form.NewController(form.WithState(s))
	valid := c.Validate(ctx)
	errs := c.State().Errors

	if err := printValidation(stdout, s.Step, errs, form.Format(cfg.Output)); err != nil {
		return err
	}
	if !valid {
		return &ValidationError{Step: s.Step, Errors: errs}
	}
	return nil
}
