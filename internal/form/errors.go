package form

import "errors"

// Usage errors returned by the controller and the pure transition functions.
var (
	ErrUnknownField = errors.New("unknown form field")
	ErrSubmitted    = errors.New("request already submitted, reset to start a new one")
	ErrInvalidStep  = errors.New("step must be between 1 and 4")
	ErrNotSubmitted = errors.New("request has not been submitted")

	ErrUnknownFormat = errors.New("unknown output format")
)
