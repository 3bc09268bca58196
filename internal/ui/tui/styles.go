package tui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#22c55e")
	red    = lipgloss.Color("#ef4444")
	yellow = lipgloss.Color("#eab308")
	blue   = lipgloss.Color("#3b82f6")
	grey   = lipgloss.Color("#6b7280")
	white  = lipgloss.Color("#f9fafb")
)

// Header and step list.
var (
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(white)
	hintStyle        = lipgloss.NewStyle().Foreground(grey)
	currentStepStyle = lipgloss.NewStyle().Bold(true).Foreground(white)
	doneStyle        = lipgloss.NewStyle().Foreground(green)
	mutedStyle       = lipgloss.NewStyle().Foreground(grey)
	barFilledStyle   = lipgloss.NewStyle().Foreground(green)
	barEmptyStyle    = lipgloss.NewStyle().Foreground(grey)
)

// Step body.
var (
	stepTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(blue).MarginTop(1)
	fieldLabelStyle = lipgloss.NewStyle().Foreground(white)
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(blue)
	errorStyle      = lipgloss.NewStyle().Foreground(red)
	noticeStyle     = lipgloss.NewStyle().Foreground(yellow)
	keyHelpStyle    = lipgloss.NewStyle().Foreground(grey).MarginTop(1)
)

// Step list markers.
const (
	markDone    = "[OK]"
	markInvalid = "[!!]"
	markCurrent = "[>>]"
	markTodo    = "[  ]"
)
