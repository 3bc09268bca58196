// Package main is the entry point for the intake CLI.
//
// intake collects service requests through a four-step wizard: customer
// information, problem description, mock payment and review. Requests can
// be entered interactively or submitted from a YAML answers file.
//
// For detailed usage information, run:
//
//	intake --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/intake/cmd/intake/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
