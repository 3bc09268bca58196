package form

import (
	"context"
	"sort"
	"time"

	"github.com/go-logr/logr"
)

// Controller holds the wizard state for a renderer. It is not safe for
// concurrent use; renderers deliver one input at a time.
type Controller struct {
	state   State
	receipt *Receipt
	now     func() time.Time
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithClock overrides the clock used to timestamp receipts.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// WithState starts the controller from s instead of the initial state.
func WithState(s State) ControllerOption {
	return func(c *Controller) {
		c.state = s.Clone()
	}
}

// NewController returns a controller positioned on the first step.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		state: New(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Receipt returns the receipt of the last submission.
func (c *Controller) Receipt() (Receipt, error) {
	if c.receipt == nil || !c.state.Submitted {
		return Receipt{}, ErrNotSubmitted
	}
	return *c.receipt, nil
}

// SetField stores a value entered by the user.
func (c *Controller) SetField(ctx context.Context, f Field, value string) error {
	next, err := SetField(c.state, f, value)
	if err != nil {
		return err
	}
	c.state = next
	logr.FromContextOrDiscard(ctx).V(2).Info("field updated", "field", f, "step", c.state.Step.String())
	return nil
}

// Validate checks the current step and reports whether it passed.
func (c *Controller) Validate(ctx context.Context) bool {
	next, ok := Validate(c.state)
	c.state = next
	if !ok {
		recordValidationFailuresMetric(next.Errors)
		logr.FromContextOrDiscard(ctx).V(1).Info("step validation failed",
			"step", next.Step.String(), "fields", failingFields(next.Errors))
	}
	return ok
}

// Next advances to the following step when the current one is valid.
func (c *Controller) Next(ctx context.Context) Outcome {
	return c.fire(ctx, EventNext)
}

// Previous moves back one step.
func (c *Controller) Previous(ctx context.Context) Outcome {
	return c.fire(ctx, EventPrevious)
}

// Submit submits the request from the review step and returns its receipt.
func (c *Controller) Submit(ctx context.Context) (Receipt, Outcome) {
	data := c.state.Data
	outcome := c.fire(ctx, EventSubmit)
	if outcome != OutcomeMoved {
		return Receipt{}, outcome
	}

	r := NewReceipt(data, c.now())
	c.receipt = &r
	recordSubmissionMetric()

	logr.FromContextOrDiscard(ctx).Info("service request submitted",
		"customerName", r.CustomerName,
		"customerEmail", r.CustomerEmail,
		"serviceType", r.ServiceType,
		"cardNumber", r.CardNumber,
		"submittedAt", r.SubmittedAt,
	)
	return r, outcome
}

// Reset discards all input and returns to the first step.
func (c *Controller) Reset(ctx context.Context) {
	c.fire(ctx, EventReset)
	c.receipt = nil
}

func (c *Controller) fire(ctx context.Context, event Event) Outcome {
	logger := logr.FromContextOrDiscard(ctx)

	from := c.state.Phase()
	next, outcome := Apply(c.state, event)
	c.state = next

	recordTransitionMetric(event, outcome)
	if outcome == OutcomeBlocked {
		recordValidationFailuresMetric(next.Errors)
		logger.V(1).Info("step validation failed",
			"step", next.Step.String(), "fields", failingFields(next.Errors))
	}
	logger.V(1).Info("wizard event", "event", event, "outcome", outcome, "from", from, "to", next.Phase())
	return outcome
}

func failingFields(errs ErrorMap) []string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return fields
}
