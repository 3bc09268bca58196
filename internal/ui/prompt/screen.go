package prompt

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/intake/internal/form"
)

// Action is the navigation choice made at the end of a screen.
type Action string

// Screen actions.
const (
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionSubmit   Action = "submit"
	ActionQuit     Action = "quit"
)

// Screen is one round of questions: the fields of the current step plus the
// navigation choice, or the success screen after submission.
type Screen struct {
	State  form.State
	Values map[form.Field]*string
	Action Action
	// Again is set on the success screen when the user wants to start over.
	Again bool
}

// NewScreen prepares the questions for s, prefilled with the values already
// entered.
func NewScreen(s form.State) *Screen {
	sc := &Screen{
		State:  s,
		Values: map[form.Field]*string{},
		Action: ActionNext,
	}
	if s.Step == form.StepReview {
		sc.Action = ActionSubmit
	}
	if s.Submitted {
		return sc
	}
	for _, spec := range form.FieldsFor(s.Step) {
		v := s.Data.Get(spec.Field)
		sc.Values[spec.Field] = &v
	}
	return sc
}

// Form builds the huh form for the screen.
func (sc *Screen) Form() *huh.Form {
	if sc.State.Submitted {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewNote().
					Title(form.SubmittedTitle).
					Description(form.SubmittedMessage),
				huh.NewConfirm().
					Title("Submit another request?").
					Affirmative("Submit Another Request").
					Negative("Done").
					Value(&sc.Again),
			),
		)
	}

	step := sc.State.Step
	var fields []huh.Field

	if step == form.StepReview {
		fields = append(fields, huh.NewNote().
			Title(step.Heading()).
			Description(reviewText(sc.State.Data)))
	} else {
		fields = append(fields, huh.NewNote().
			Title(step.Heading()).
			Description(form.NoteFor(step)))
		for _, spec := range form.FieldsFor(step) {
			fields = append(fields, sc.field(spec))
		}
	}

	fields = append(fields, huh.NewSelect[Action]().
		Title("Continue").
		Options(actionOptions(sc.State)...).
		Value(&sc.Action))

	return huh.NewForm(huh.NewGroup(fields...))
}

func (sc *Screen) field(spec form.FieldSpec) huh.Field {
	value := sc.Values[spec.Field]
	desc := ""
	if msg, ok := sc.State.Errors[spec.Field]; ok {
		desc = "✗ " + msg
	}

	switch spec.Kind {
	case form.InputSelect:
		opts := make([]huh.Option[string], 0, len(form.ServiceTypes))
		for _, st := range form.ServiceTypes {
			opts = append(opts, huh.NewOption(st.Label, string(st.Value)))
		}
		return huh.NewSelect[string]().
			Title(spec.Label).
			Description(desc).
			Options(opts...).
			Value(value)

	case form.InputTextArea:
		return huh.NewText().
			Title(spec.Label).
			Description(desc).
			Placeholder(spec.Placeholder).
			Value(value)
	}

	in := huh.NewInput().
		Title(spec.Label).
		Description(desc).
		Placeholder(spec.Placeholder).
		CharLimit(spec.MaxLength).
		Value(value)
	if spec.Field == form.FieldCVV {
		in = in.EchoMode(huh.EchoModePassword)
	}
	return in
}

// actionOptions offers the events the machine accepts from s.
func actionOptions(s form.State) []huh.Option[Action] {
	var opts []huh.Option[Action]
	switch {
	case s.Can(form.EventSubmit):
		opts = append(opts, huh.NewOption("Submit Request", ActionSubmit))
	case s.Step == form.StepPayment:
		opts = append(opts, huh.NewOption("Review & Submit", ActionNext))
	default:
		opts = append(opts, huh.NewOption("Next", ActionNext))
	}
	if s.Can(form.EventPrevious) {
		opts = append(opts, huh.NewOption("Previous", ActionPrevious))
	}
	return append(opts, huh.NewOption("Quit", ActionQuit))
}

func reviewText(data form.FormData) string {
	var b strings.Builder
	form.WriteSections(&b, form.Review(data))
	return strings.TrimSpace(b.String())
}
