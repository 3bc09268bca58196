package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/intake/cmd/intake/handlers"
)

// New returns the command that runs an interactive intake session.
//
// Flags:
//
//	--renderer, -r: tui (full screen) or prompt (line by line)
//	--output, -o: receipt format
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start an interactive service request",
		Long: `Start an interactive service request.

The wizard asks for the request in four steps:

  1. Customer information (name, email, phone)
  2. Problem description (service type and details)
  3. Payment information (mock, nothing is charged)
  4. Review and submit

Each step is validated before you can continue. After submitting you can
start another request; a receipt is printed for every submitted request
when the session ends.

The tui renderer needs a terminal. When stdout is not a terminal the
prompt renderer is used in accessible mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.New(cmd.Context(), configPath(cmd), cmd.Flags())
		},
	}

	cmd.Flags().StringP("renderer", "r", "tui", "Renderer: tui or prompt")
	addOutputFlag(cmd)

	return cmd
}
