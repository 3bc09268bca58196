// Package tui provides a Bubble Tea-based full-screen renderer for the
// service request wizard.
package tui

// ErrMsg carries an error that ends the session.
type ErrMsg struct{ Err error }
