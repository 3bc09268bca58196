package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/intake/cmd/intake/handlers"
)

// Validate returns the command that validates the fields of a single step.
func Validate() *cobra.Command {
	var (
		step int
		sets []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the fields of one wizard step",
		Example: `  intake validate --step 1 --set customerName="Jane Doe" --set customerEmail=jane@example.com --set customerPhone=1234567890
  intake validate --step 3 --set cardNumber=4111111111111111 --set expiryDate=12/25 --set cvv=123 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), step, sets, configPath(cmd), cmd.Flags())
		},
	}

	cmd.Flags().IntVarP(&step, "step", "s", 1, "Step to validate (1-4)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field value as field=value (repeatable)")
	addOutputFlag(cmd)

	return cmd
}
