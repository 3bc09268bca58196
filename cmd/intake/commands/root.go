// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the intake CLI.
//
// The root command owns the flags shared by every subcommand: the config
// file path and the logging and metrics overrides.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "intake",
		Short:        "Collect service requests through a four-step wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default ./intake.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", "", "Log format: console or json")
	cmd.PersistentFlags().String("metrics-file", "", "Write prometheus metrics to this textfile on exit")

	cmd.AddCommand(New())
	cmd.AddCommand(Submit())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// configPath returns the value of the persistent --config flag.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}
