// Package handlers implements the business logic behind the intake CLI
// commands.
//
// Each handler loads the configuration, builds a logger, drives a
// form.Controller and prints the result. Collaborators that touch the
// terminal or the filesystem are package-level variables so tests can
// replace them.
package handlers
