package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// Event is an input to the wizard state machine.
type Event string

// Wizard events.
const (
	EventNext     Event = "next"
	EventPrevious Event = "previous"
	EventSubmit   Event = "submit"
	EventReset    Event = "reset"
)

// Outcome reports what an event did to the state.
type Outcome string

// Event outcomes.
const (
	// OutcomeMoved means the machine changed state.
	OutcomeMoved Outcome = "moved"
	// OutcomeStayed means the event was accepted without leaving the state,
	// e.g. next on the review step or reset on the first step.
	OutcomeStayed Outcome = "stayed"
	// OutcomeBlocked means validation of the current step failed.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeIgnored means the event is not allowed in the current state.
	OutcomeIgnored Outcome = "ignored"
)

// PhaseSubmitted is the terminal phase reached by a successful submit.
const PhaseSubmitted = "submitted"

var (
	phaseStep1 = phaseName(StepCustomer)
	phaseStep2 = phaseName(StepProblem)
	phaseStep3 = phaseName(StepPayment)
	phaseStep4 = phaseName(StepReview)
)

// transitions is the wizard's transition table. next on the review step is a
// self transition so its guard still runs and clears stale errors.
var transitions = fsm.Events{
	{Name: string(EventNext), Src: []string{phaseStep1}, Dst: phaseStep2},
	{Name: string(EventNext), Src: []string{phaseStep2}, Dst: phaseStep3},
	{Name: string(EventNext), Src: []string{phaseStep3}, Dst: phaseStep4},
	{Name: string(EventNext), Src: []string{phaseStep4}, Dst: phaseStep4},

	{Name: string(EventPrevious), Src: []string{phaseStep2}, Dst: phaseStep1},
	{Name: string(EventPrevious), Src: []string{phaseStep3}, Dst: phaseStep2},
	{Name: string(EventPrevious), Src: []string{phaseStep4}, Dst: phaseStep3},

	{Name: string(EventSubmit), Src: []string{phaseStep4}, Dst: PhaseSubmitted},

	{Name: string(EventReset), Src: []string{phaseStep1, phaseStep2, phaseStep3, phaseStep4, PhaseSubmitted}, Dst: phaseStep1},
}

func phaseName(s Step) string {
	return fmt.Sprintf("step%d", int(s))
}

// State is a snapshot of the wizard.
type State struct {
	Step      Step     `json:"step"`
	Data      FormData `json:"formData"`
	Errors    ErrorMap `json:"errors"`
	Submitted bool     `json:"submitted"`
}

// New returns the initial state: first step, empty fields, no errors.
func New() State {
	return State{
		Step:   FirstStep,
		Errors: ErrorMap{},
	}
}

// Clone returns a copy that shares nothing with s.
func (s State) Clone() State {
	out := s
	out.Errors = s.Errors.Clone()
	return out
}

// Phase returns the name of the state machine state s is in.
func (s State) Phase() string {
	if s.Submitted {
		return PhaseSubmitted
	}
	return phaseName(s.Step)
}

// Can reports whether event is allowed from s. It does not run validation.
func (s State) Can(event Event) bool {
	return fsm.NewFSM(s.Phase(), transitions, nil).Can(string(event))
}

// validate replaces the error map with the failures of the current step.
func (s *State) validate() bool {
	s.Errors = ValidateStep(s.Step, s.Data)
	return len(s.Errors) == 0
}

func (s *State) enter(phase string) {
	if phase == PhaseSubmitted {
		s.Submitted = true
		return
	}
	var step int
	if _, err := fmt.Sscanf(phase, "step%d", &step); err == nil {
		s.Step = Step(step)
	}
	s.Submitted = false
}

// Apply fires event against s and returns the resulting state. s itself is
// never modified.
func Apply(s State, event Event) (State, Outcome) {
	next := s.Clone()

	guard := func(_ context.Context, e *fsm.Event) {
		if !next.validate() {
			e.Cancel()
		}
	}

	m := fsm.NewFSM(next.Phase(), transitions, fsm.Callbacks{
		"before_" + string(EventNext):   guard,
		"before_" + string(EventSubmit): guard,
		"before_" + string(EventReset): func(_ context.Context, _ *fsm.Event) {
			next = New()
		},
	})

	err := m.Event(context.Background(), string(event))

	var (
		noTransition fsm.NoTransitionError
		canceled     fsm.CanceledError
	)
	switch {
	case err == nil:
		next.enter(m.Current())
		return next, OutcomeMoved
	case errors.As(err, &noTransition):
		return next, OutcomeStayed
	case errors.As(err, &canceled):
		return next, OutcomeBlocked
	default:
		return s.Clone(), OutcomeIgnored
	}
}

// SetField stores value in field f and clears any error recorded for f.
// No validation is performed.
func SetField(s State, f Field, value string) (State, error) {
	if s.Submitted {
		return s, ErrSubmitted
	}
	next := s.Clone()
	if err := next.Data.Set(f, value); err != nil {
		return s, err
	}
	delete(next.Errors, f)
	return next, nil
}

// Validate checks the current step, replacing the error map with exactly the
// failures found. It reports whether the step is valid.
func Validate(s State) (State, bool) {
	next := s.Clone()
	ok := next.validate()
	return next, ok
}

// Next validates the current step and advances when it passes. On the review
// step a valid next leaves the step unchanged.
func Next(s State) State {
	next, _ := Apply(s, EventNext)
	return next
}

// Previous moves back one step without validation. It does nothing on the
// first step or after submission.
func Previous(s State) State {
	next, _ := Apply(s, EventPrevious)
	return next
}

// Submit marks the request as submitted. It is only accepted on the review
// step.
func Submit(s State) State {
	next, _ := Apply(s, EventSubmit)
	return next
}

// Reset returns the machine to its initial state.
func Reset(s State) State {
	next, _ := Apply(s, EventReset)
	return next
}

// GoTo returns s positioned on step without validation. It is used to
// restore a state rendered elsewhere, e.g. from the command line.
func GoTo(s State, step Step) (State, error) {
	if !step.Valid() {
		return s, fmt.Errorf("%w: got %d", ErrInvalidStep, int(step))
	}
	next := s.Clone()
	next.Step = step
	next.Submitted = false
	return next, nil
}
