package handlers

import (
	"errors"
	"fmt"

	"github.com/imamik/intake/internal/form"
)

// ErrValidationFailed is returned, wrapped in a ValidationError, when a step
// does not pass validation.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError reports the failing fields of one step.
type ValidationError struct {
	Step   form.Step
	Errors form.ErrorMap
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: step %d (%s) has %d invalid field(s)",
		ErrValidationFailed, int(e.Step), e.Step, len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
