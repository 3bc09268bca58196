package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/intake/internal/form"
	intaketest "github.com/imamik/intake/internal/testing"
)

func newTestModel() Model {
	c := form.NewController(form.WithClock(func() time.Time {
		return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
	return NewModel(context.Background(), c)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	previous = tea.KeyMsg{Type: tea.KeyCtrlB}
)

func fillCustomer(t *testing.T, m Model) Model {
	return press(t, m,
		typeText("Jane Doe"), tab,
		typeText("jane@example.com"), tab,
		typeText("1234567890"),
		enter,
	)
}

func fillProblem(t *testing.T, m Model) Model {
	return press(t, m,
		right, tab,
		typeText("Broken heater"),
		enter,
	)
}

func fillPayment(t *testing.T, m Model) Model {
	return press(t, m,
		typeText("4111111111111111"), tab,
		typeText("12/25"), tab,
		typeText("123"),
		enter,
	)
}

func TestModel_TypingUpdatesController(t *testing.T) {
	m := newTestModel()
	m = press(t, m, typeText("Jane"))
	assert.Equal(t, "Jane", m.State().Data.CustomerName)
}

func TestModel_EnterWithInvalidFieldsShowsErrors(t *testing.T) {
	m := newTestModel()
	m = press(t, m, typeText("Jane"), tab, typeText("abc"), enter)

	s := m.State()
	assert.Equal(t, form.StepCustomer, s.Step)
	assert.Equal(t, "Email is invalid.", s.Errors[form.FieldCustomerEmail])
	assert.Equal(t, 1, m.focus)

	view := m.View()
	assert.Contains(t, view, "Email is invalid.")
	assert.Contains(t, view, "Phone number is required.")
	assert.NotContains(t, view, "ctrl+b previous")
}

func TestModel_EditingClearsFieldError(t *testing.T) {
	m := newTestModel()
	m = press(t, m, enter)
	require.Contains(t, m.State().Errors, form.FieldCustomerName)

	m = press(t, m, typeText("J"))
	assert.NotContains(t, m.State().Errors, form.FieldCustomerName)
	assert.NotContains(t, m.View(), "Name is required.")
}

func TestModel_FullFlow(t *testing.T) {
	m := newTestModel()

	m = fillCustomer(t, m)
	require.Equal(t, form.StepProblem, m.State().Step)
	assert.Contains(t, m.View(), "Problem Description")

	m = fillProblem(t, m)
	require.Equal(t, form.StepPayment, m.State().Step)
	assert.Equal(t, "repair", m.State().Data.ServiceType)
	assert.Contains(t, m.View(), "mock payment")
	assert.Contains(t, m.View(), "review & submit")

	m = fillPayment(t, m)
	require.Equal(t, form.StepReview, m.State().Step)
	view := m.View()
	assert.Contains(t, view, "Customer Details:")
	assert.Contains(t, view, "**** **** **** 1111")
	assert.NotContains(t, view, "4111111111111111")

	m = press(t, m, enter)
	assert.True(t, m.State().Submitted)
	require.Len(t, m.Receipts, 1)
	assert.Contains(t, m.View(), form.SubmittedTitle)

	m = press(t, m, enter)
	assert.Equal(t, form.New(), m.State())
	assert.Len(t, m.Receipts, 1)
}

func TestModel_PreviousKeepsValues(t *testing.T) {
	m := fillCustomer(t, newTestModel())
	require.Equal(t, form.StepProblem, m.State().Step)

	m = press(t, m, previous)
	assert.Equal(t, form.StepCustomer, m.State().Step)
	assert.Equal(t, "Jane Doe", m.inputs[0].Value())

	m = press(t, m, previous)
	assert.Equal(t, form.StepCustomer, m.State().Step)
}

func TestModel_ServiceTypeCycles(t *testing.T) {
	m := fillCustomer(t, newTestModel())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, string(form.ServiceOther), m.State().Data.ServiceType)

	m = press(t, m, right)
	assert.Equal(t, string(form.ServiceRepair), m.State().Data.ServiceType)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).Quit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ErrMsgQuits(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(ErrMsg{Err: assert.AnError})
	assert.ErrorIs(t, next.(Model).Err, assert.AnError)
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		state form.State
		want  float64
	}{
		{form.New(), 0},
		{form.State{Step: form.StepPayment}, 0.5},
		{form.State{Step: form.StepReview, Submitted: true}, 1.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, calculateProgress(tt.state), 0.001)
	}
}

func TestRenderSteps(t *testing.T) {
	var b strings.Builder
	renderSteps(&b, form.State{Step: form.StepPayment})
	out := b.String()
	for _, label := range []string{"Customer", "Problem", "Payment", "Review"} {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 2, strings.Count(out, markDone))
	assert.Equal(t, 1, strings.Count(out, markCurrent))
}

func TestModel_ReviewMasksCard(t *testing.T) {
	data := intaketest.NewRequestBuilder().WithPayment("5555444433332222", "01/30", "999").Build()
	m := NewModel(context.Background(), intaketest.ControllerAt(data, form.StepReview))

	view := m.View()
	assert.Contains(t, view, "Review Your Request")
	assert.Contains(t, view, "**** **** **** 2222")
	assert.NotContains(t, view, "999")
	assert.Contains(t, view, "enter submit request")
}

func TestModel_SubmitFromReview(t *testing.T) {
	c := intaketest.ControllerAt(intaketest.NewRequestBuilder().Build(), form.StepReview)
	m := press(t, NewModel(context.Background(), c), enter)

	require.Len(t, m.Receipts, 1)
	assert.True(t, m.State().Submitted)
	assert.Contains(t, m.View(), "submit another request")
}
