package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/imamik/intake/internal/form"
)

// printReceipts writes every receipt in the requested format.
func printReceipts(w io.Writer, receipts []form.Receipt, format form.Format) error {
	for i, r := range receipts {
		if i > 0 {
			sep := "\n"
			if format == form.FormatYAML {
				sep = "---\n"
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if err := r.Encode(w, format); err != nil {
			return fmt.Errorf("failed to print receipt: %w", err)
		}
	}
	return nil
}

// FieldError is one entry of a validation report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport is the printable result of validating a step.
type ValidationReport struct {
	Step   int          `json:"step"`
	Label  string       `json:"label"`
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

func newValidationReport(step form.Step, errs form.ErrorMap) ValidationReport {
	report := ValidationReport{
		Step:   int(step),
		Label:  step.String(),
		Valid:  len(errs) == 0,
		Errors: []FieldError{},
	}
	for _, f := range form.AllFields {
		if msg, ok := errs[f]; ok {
			report.Errors = append(report.Errors, FieldError{Field: string(f), Message: msg})
		}
	}
	return report
}

// printValidation writes a validation report in the requested format.
func printValidation(w io.Writer, step form.Step, errs form.ErrorMap, format form.Format) error {
	report := newValidationReport(step, errs)

	switch format {
	case form.FormatJSON:
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case form.FormatYAML:
		b, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(b)
		return err
	}

	if report.Valid {
		_, err := fmt.Fprintf(w, "Step %d (%s) is valid.\n", report.Step, report.Label)
		return err
	}
	if _, err := fmt.Fprintf(w, "Step %d (%s) has errors:\n", report.Step, report.Label); err != nil {
		return err
	}
	for _, fe := range report.Errors {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message); err != nil {
			return err
		}
	}
	return nil
}
