package tui

import (
	"fmt"
	"strings"

	"github.com/imamik/intake/internal/form"
)

func renderView(m Model) string {
	var b strings.Builder
	s := m.controller.State()

	renderHeader(&b, s)

	if s.Submitted {
		renderSuccess(&b, m)
		renderFooter(&b, s)
		return b.String()
	}

	renderSteps(&b, s)
	renderProgressBar(&b, m, s)

	b.WriteString(stepTitleStyle.Render("  " + s.Step.Heading()))
	b.WriteString("\n")

	if s.Step == form.StepReview {
		renderReview(&b, s)
	} else {
		renderFields(&b, m, s)
	}

	if note := form.NoteFor(s.Step); note != "" {
		fmt.Fprintf(&b, "\n  %s\n", noticeStyle.Render(note))
	}

	renderFooter(&b, s)
	return b.String()
}

func renderHeader(b *strings.Builder, s form.State) {
	b.WriteString(headingStyle.Render("Service Request"))
	if s.Submitted {
		b.WriteString(" " + doneStyle.Render("Submitted"))
	} else {
		b.WriteString(" " + hintStyle.Render(fmt.Sprintf("Step %d of %d", int(s.Step), int(form.LastStep))))
	}
	b.WriteString("\n")
}

// renderSteps draws the step indicator: completed steps, the active step and
// the steps still ahead.
func renderSteps(b *strings.Builder, s form.State) {
	parts := make([]string, 0, len(form.Steps()))
	for _, step := range form.Steps() {
		icon, style := markTodo, mutedStyle
		switch {
		case s.Submitted || step < s.Step:
			icon, style = markDone, doneStyle
		case step == s.Step:
			icon, style = markCurrent, currentStepStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d %s", icon, int(step), step)))
	}
	fmt.Fprintf(b, "  %s\n", strings.Join(parts, "  "))
}

func renderProgressBar(b *strings.Builder, m Model, s form.State) {
	progress := calculateProgress(s)
	barWidth := 40
	if m.Width > 0 && m.Width < 60 {
		barWidth = max(m.Width-20, 10)
	}
	filled := min(int(float64(barWidth)*progress), barWidth)

	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderFields(b *strings.Builder, m Model, s form.State) {
	for i, spec := range m.specs {
		label := fieldLabelStyle.Render(spec.Label)
		if i == m.focus {
			label = focusedStyle.Render(spec.Label)
		}
		fmt.Fprintf(b, "\n  %s\n", label)

		if spec.Kind == form.InputSelect {
			fmt.Fprintf(b, "  %s\n", renderServiceOptions(m, i == m.focus))
		} else {
			fmt.Fprintf(b, "  %s\n", m.inputs[i].View())
		}

		if msg, ok := s.Errors[spec.Field]; ok {
			fmt.Fprintf(b, "  %s\n", errorStyle.Render(markInvalid+" "+msg))
		}
	}
}

func renderServiceOptions(m Model, focused bool) string {
	if m.service < 0 && !focused {
		spec, _ := form.SpecFor(form.FieldServiceType)
		return mutedStyle.Render(spec.Placeholder)
	}
	opts := make([]string, 0, len(form.ServiceTypes))
	for i, opt := range form.ServiceTypes {
		if i == m.service {
			opts = append(opts, focusedStyle.Render("("+opt.Label+")"))
			continue
		}
		opts = append(opts, mutedStyle.Render(opt.Label))
	}
	return strings.Join(opts, " ")
}

func renderReview(b *strings.Builder, s form.State) {
	for _, section := range form.Review(s.Data) {
		fmt.Fprintf(b, "\n  %s\n", currentStepStyle.Render(section.Title+":"))
		for _, line := range section.Lines {
			fmt.Fprintf(b, "    %s %s\n", mutedStyle.Render(line.Label+":"), line.Value)
		}
	}
}

func renderSuccess(b *strings.Builder, m Model) {
	fmt.Fprintf(b, "\n  %s\n", doneStyle.Render(markDone+" "+form.SubmittedTitle))
	fmt.Fprintf(b, "  %s\n", form.SubmittedMessage)
	if n := len(m.Receipts); n > 0 {
		r := m.Receipts[n-1]
		fmt.Fprintf(b, "  %s\n", mutedStyle.Render("Submitted at "+r.SubmittedAt.Local().Format("15:04:05")))
	}
}

func renderFooter(b *strings.Builder, s form.State) {
	var keys []string
	switch {
	case s.Submitted:
		keys = append(keys, "enter/r submit another request", "q quit")
	case s.Can(form.EventSubmit):
		keys = append(keys, "enter submit request", "ctrl+b previous", "esc quit")
	default:
		if s.Step == form.StepPayment {
			keys = append(keys, "enter review & submit")
		} else {
			keys = append(keys, "enter next")
		}
		keys = append(keys, "tab/shift+tab move")
		if s.Can(form.EventPrevious) {
			keys = append(keys, "ctrl+b previous")
		}
		if s.Step == form.StepProblem {
			keys = append(keys, "left/right choose")
		}
		keys = append(keys, "esc quit")
	}
	b.WriteString(keyHelpStyle.Render("  " + strings.Join(keys, "  |  ")))
	b.WriteString("\n")
}

// calculateProgress returns the share of completed steps.
func calculateProgress(s form.State) float64 {
	if s.Submitted {
		return 1.0
	}
	return float64(s.Step-form.FirstStep) / float64(form.LastStep-form.FirstStep+1)
}
