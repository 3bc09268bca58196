package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/intake/internal/form"
)

// Model is the Bubble Tea model for the wizard. All decisions are made by
// the controller; the model only forwards input and mirrors its state.
type Model struct {
	ctx        context.Context
	controller *form.Controller

	// Inputs of the step currently shown, parallel to specs.
	specs  []form.FieldSpec
	inputs []textinput.Model
	focus  int

	// Index into form.ServiceTypes, -1 when nothing is selected.
	service int

	// Receipts of every request submitted in this session.
	Receipts []form.Receipt

	// UI state
	Width  int
	Height int
	Err    error
	Quit   bool
}

// NewModel creates a wizard model driving c.
func NewModel(ctx context.Context, c *form.Controller) Model {
	m := Model{
		ctx:        ctx,
		controller: c,
	}
	m.syncInputs()
	return m
}

// State returns the controller's current state.
func (m Model) State() form.State {
	return m.controller.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.Quit = true
		return m, tea.Quit
	}

	s := m.controller.State()
	if s.Submitted {
		switch msg.String() {
		case "enter", "r":
			m.controller.Reset(m.ctx)
			m.syncInputs()
		case "q":
			m.Quit = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+b":
		if m.controller.Previous(m.ctx) == form.OutcomeMoved {
			m.syncInputs()
		}
		return m, nil

	case "enter":
		if s.Step == form.StepReview {
			r, outcome := m.controller.Submit(m.ctx)
			if outcome != form.OutcomeMoved {
				return m, nil
			}
			m.Receipts = append(m.Receipts, r)
			m.syncInputs()
			return m, nil
		}
		if m.controller.Next(m.ctx) == form.OutcomeMoved {
			m.syncInputs()
		} else {
			m.focusFirstError()
		}
		return m, nil

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	}

	if len(m.specs) == 0 {
		return m, nil
	}

	spec := m.specs[m.focus]
	if spec.Kind == form.InputSelect {
		switch msg.String() {
		case "left", "h":
			return m.cycleService(-1)
		case "right", "l", " ":
			return m.cycleService(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if v := m.inputs[m.focus].Value(); v != before {
		if err := m.controller.SetField(m.ctx, spec.Field, v); err != nil {
			m.Err = err
			return m, tea.Quit
		}
	}
	return m, cmd
}

// syncInputs rebuilds the inputs for the step the controller is on.
func (m *Model) syncInputs() {
	s := m.controller.State()
	m.specs = nil
	m.inputs = nil
	m.focus = 0
	m.service = serviceIndex(s.Data.ServiceType)

	if s.Submitted {
		return
	}
	for _, spec := range form.FieldsFor(s.Step) {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = spec.Placeholder
		ti.CharLimit = spec.MaxLength
		if spec.Field == form.FieldCVV {
			ti.EchoMode = textinput.EchoPassword
		}
		ti.SetValue(s.Data.Get(spec.Field))
		m.specs = append(m.specs, spec)
		m.inputs = append(m.inputs, ti)
	}
	m.setFocus(0)
}

func (m *Model) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = i
	for j := range m.inputs {
		if j == i && m.specs[j].Kind != form.InputSelect {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) moveFocus(delta int) {
	n := len(m.inputs)
	if n == 0 {
		return
	}
	m.setFocus((m.focus + delta + n) % n)
}

func (m *Model) focusFirstError() {
	errs := m.controller.State().Errors
	for i, spec := range m.specs {
		if _, ok := errs[spec.Field]; ok {
			m.setFocus(i)
			return
		}
	}
}

func (m Model) cycleService(delta int) (tea.Model, tea.Cmd) {
	n := len(form.ServiceTypes)
	switch {
	case m.service < 0 && delta > 0:
		m.service = 0
	case m.service < 0:
		m.service = n - 1
	default:
		m.service = (m.service + delta + n) % n
	}
	value := string(form.ServiceTypes[m.service].Value)
	if err := m.controller.SetField(m.ctx, form.FieldServiceType, value); err != nil {
		m.Err = err
		return m, tea.Quit
	}
	return m, nil
}

func serviceIndex(value string) int {
	for i, opt := range form.ServiceTypes {
		if string(opt.Value) == value {
			return i
		}
	}
	return -1
}
