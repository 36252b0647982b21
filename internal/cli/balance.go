package cli

import (
	"github.com/spf13/cobra"
)

func balanceCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "balance <key>",
		Short: "Show balances for a public address or secret seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			report, err := a.checkBalance.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printBalances(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}
