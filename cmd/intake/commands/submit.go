package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/intake/cmd/intake/handlers"
)

// Submit returns the command that submits a request from an answers file.
func Submit() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a service request from a YAML answers file",
		Long: `Submit a service request from a YAML answers file.

The file maps field names to values:

  customerName: Jane Doe
  customerEmail: jane@example.com
  customerPhone: "1234567890"
  serviceType: repair
  problemDescription: The dishwasher leaks
  cardNumber: "4111111111111111"
  expiryDate: "12/25"
  cvv: "123"

The steps are validated in order. The errors of the first failing step are
printed and the command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Submit(cmd.Context(), answersPath, configPath(cmd), cmd.Flags())
		},
	}

	cmd.Flags().StringVarP(&answersPath, "file", "f", "", "Path to the answers file")
	_ = cmd.MarkFlagRequired("file")
	addOutputFlag(cmd)

	return cmd
}
