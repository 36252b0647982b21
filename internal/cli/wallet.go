package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func walletCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "wallet",
		Short: "Create or recover wallets (never written to disk)",
	}

	c.AddCommand(walletNewCmd(opts), walletRecoverCmd(opts))
	return c
}

func walletNewCmd(opts *rootOptions) *cobra.Command {
	var reveal bool
	var format string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new keypair with a 24-word mnemonic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			w, err := a.createWallet.Execute(cmd.Context())
			if err != nil {
				return err
			}

			show := reveal || a.cfg.Display.RevealSecrets
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), toWalletJSON(w, show))
			}
			printWallet(cmd.OutOrStdout(), w, show)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the secret key and mnemonic")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func walletRecoverCmd(opts *rootOptions) *cobra.Command {
	var reveal bool
	var passphrase string

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Re-derive a wallet from a mnemonic read on stdin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			mnemonic, err := readLine(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read mnemonic: %w", err)
			}

			w, err := a.recoverer(passphrase).Recover(mnemonic)
			if err != nil {
				return err
			}

			if !reveal {
				fmt.Fprintln(cmd.OutOrStdout(), w.PublicKey)
				return nil
			}
			printWallet(cmd.OutOrStdout(), w, true)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Also show the secret key")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Optional BIP-39 passphrase the wallet was created with")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
