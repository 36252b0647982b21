package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lumen/internal/domain"
)

func keyCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "key",
		Short: "Inspect Stellar keys",
	}
	c.AddCommand(keyInspectCmd(opts))
	return c
}

func keyInspectCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <key>",
		Short: "Tell whether a key is a public address or a secret seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			c := a.classifier.Classify(args[0])
			out := cmd.OutOrStdout()

			if format == formatJSON {
				if err := writeJSON(out, map[string]string{
					"kind":    string(c.Kind),
					"address": c.DerivedPublicKey,
					"error":   c.ErrorMessage,
				}); err != nil {
					return err
				}
			} else {
				switch c.Kind {
				case domain.KeyPublic:
					fmt.Fprintf(out, "public key\naddress: %s\n", c.DerivedPublicKey)
				case domain.KeyPrivate:
					fmt.Fprintf(out, "secret key\naddress: %s\n", c.DerivedPublicKey)
				default:
					fmt.Fprintln(out, c.ErrorMessage)
				}
			}

			if !c.Valid() {
				return fmt.Errorf("%s: %w", c.ErrorMessage, domain.ErrInvalidInput)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}
