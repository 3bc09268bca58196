package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/imamik/intake/internal/form"
)

// Factory function variables for submit - can be replaced in tests.
var (
	readFile = os.ReadFile
)

// Submit drives the wizard from an answers file, without prompting. The file
// is a YAML mapping of field names to values, e.g.
//
//	customerName: Jane Doe
//	customerEmail: jane@example.com
//
// When a step fails validation its errors are printed and a ValidationError
// is returned.
func Submit(ctx context.Context, answersPath, configPath string, flags *pflag.FlagSet) error {
	ctx, cfg, err := setup(ctx, configPath, flags)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, cfg)

	data, err := loadAnswers(answersPath)
	if err != nil {
		return err
	}

	format := form.Format(cfg.Output)
	receipt, err := submitAnswers(ctx, form.NewController(), data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			if perr := printValidation(stdout, verr.Step, verr.Errors, format); perr != nil {
				return perr
			}
		}
		return err
	}

	return printReceipts(stdout, []form.Receipt{receipt}, format)
}

// loadAnswers reads an answers file. Unknown keys are rejected so typos do
// not silently leave a field empty.
func loadAnswers(path string) (form.FormData, error) {
	var data form.FormData

	raw, err := readFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read answers file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return data, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	return data, nil
}

// submitAnswers enters data step by step, exactly as an interactive user
// would, and submits from the review step.
func submitAnswers(ctx context.Context, c *form.Controller, data form.FormData) (form.Receipt, error) {
	logger := logr.FromContextOrDiscard(ctx)

	for c.State().Step != form.StepReview {
		s := c.State()
		for _, spec := range form.FieldsFor(s.Step) {
			if err := c.SetField(ctx, spec.Field, data.Get(spec.Field)); err != nil {
				return form.Receipt{}, err
			}
		}
		if outcome := c.Next(ctx); outcome != form.OutcomeMoved {
			s = c.State()
			return form.Receipt{}, &ValidationError{Step: s.Step, Errors: s.Errors}
		}
		logger.V(1).Info("step completed", "step", s.Step.String())
	}

	r, outcome := c.Submit(ctx)
	if outcome != form.OutcomeMoved {
		return form.Receipt{}, fmt.Errorf("submit was not accepted: %s", outcome)
	}
	return r, nil
}
