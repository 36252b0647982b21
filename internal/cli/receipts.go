package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/lumen/internal/infra/receiptstore"
	"github.com/aalvaropc/lumen/internal/usecase"
)

func receiptsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "receipts",
		Short: "Browse receipts of submitted transactions",
	}
	c.AddCommand(receiptsListCmd(opts))
	return c
}

func receiptsListCmd(opts *rootOptions) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List receipts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			if err := requireWorkspace(a); err != nil {
				return err
			}

			store := a.receipts
			if store == nil {
				// Receipts may be disabled now but still exist from earlier runs.
				store = receiptstore.NewJSONStore(a.root, a.cfg)
			}

			rs, err := usecase.NewListReceipts(store).Execute(limit)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), rs)
			}
			printReceipts(cmd.OutOrStdout(), rs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultReceiptLimit, "Maximum number of receipts to show")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}
