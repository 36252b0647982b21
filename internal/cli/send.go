package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aalvaropc/lumen/internal/domain"
)

// SecretEnv names the environment variable send reads the source secret from.
const SecretEnv = "LUMEN_SECRET"

func sendCmd(opts *rootOptions) *cobra.Command {
	var to, amount, memo, asset string
	var createAccount bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send XLM or fund a new account",
		Long: "Send XLM to an existing account, or create and fund a new one with --create-account.\n" +
			"The source secret is read from $" + SecretEnv + " or prompted for without echo.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			fields := domain.TransferFields{Secret: secret, Recipient: to, Amount: amount}
			if err := a.validator.Validate(fields); err != nil {
				return err
			}

			op := domain.OperationTransfer
			if createAccount {
				op = domain.OperationCreateAccount
			}

			res := a.submit.Execute(cmd.Context(), domain.TransactionIntent{
				SourceSecret:  secret,
				DestinationID: strings.TrimSpace(to),
				Amount:        strings.TrimSpace(amount),
				Operation:     op,
				Memo:          memo,
				AssetSelector: asset,
			})

			printResult(cmd.OutOrStdout(), res)
			if !res.Success {
				return errors.New(res.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination public key (G...)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount of XLM (up to 7 decimals)")
	cmd.Flags().StringVar(&memo, "memo", "", "Optional text memo (max 28 bytes)")
	cmd.Flags().StringVar(&asset, "asset", domain.NativeAssetSelector, "Asset to send (only XLM is supported)")
	cmd.Flags().BoolVar(&createAccount, "create-account", false, "Create the destination account with --amount as starting balance")

	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

// readSecret prefers $LUMEN_SECRET, then a no-echo prompt on a terminal,
// then a plain line from in (pipes).
func readSecret(in io.Reader, prompt io.Writer) (domain.Secret, error) {
	if s := strings.TrimSpace(os.Getenv(SecretEnv)); s != "" {
		return domain.Secret(s), nil
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Secret key: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return domain.Secret(strings.TrimSpace(string(b))), nil
	}

	line, err := readLine(in)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return domain.Secret(line), nil
}
