// Package form implements the service request wizard: the field set, the
// per-step validation rules and the step state machine.
//
// The wizard is modelled as an explicit [State] value and pure transition
// functions ([SetField], [Validate], [Next], [Previous], [Submit], [Reset])
// that return a new State and never mutate their input. The transition table
// is declared with looplab/fsm; the next and submit events are guarded by the
// validation rules of the current step.
//
// Renderers hold a [Controller], which wraps a State, logs transitions and
// records metrics. Renderers never decide anything on their own: they read
// the State and forward user input to the Controller.
package form
