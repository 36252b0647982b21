package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/lumen/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBalances(w io.Writer, r domain.BalanceReport) {
	fmt.Fprintf(w, "Account: %s\n", r.AccountID)
	if r.KeyKind == domain.KeyPrivate {
		fmt.Fprintln(w, "         (derived from secret key)")
	}
	fmt.Fprintln(w)

	if len(r.Balances) == 0 {
		fmt.Fprintln(w, "(no balances)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, b := range r.Balances {
		fmt.Fprintf(tw, "%s\t%s\t\n", formatBalance(b.Balance), b.DisplayCode)
	}
	_ = tw.Flush()
}

// formatBalance drops the trailing zeros horizon pads amounts with.
func formatBalance(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.String()
}

func printWallet(w io.Writer, wal domain.Wallet, reveal bool) {
	secret := wal.Secret.Masked()
	if reveal {
		secret = wal.Secret.Reveal()
	}

	fmt.Fprintf(w, "Public key:  %s\n", wal.PublicKey)
	fmt.Fprintf(w, "Secret key:  %s\n", secret)
	if reveal && wal.Mnemonic != "" {
		fmt.Fprintf(w, "Mnemonic:    %s\n", wal.Mnemonic)
	}
	if !reveal {
		fmt.Fprintln(w, "\nSecret hidden. Re-run with --reveal to show the secret key and mnemonic.")
	}
}

// walletJSON is the explicit opt-in shape used by `wallet new --format json --reveal`.
type walletJSON struct {
	PublicKey string `json:"public_key"`
	Secret    string `json:"secret,omitempty"`
	Mnemonic  string `json:"mnemonic,omitempty"`
}

func toWalletJSON(wal domain.Wallet, reveal bool) walletJSON {
	out := walletJSON{PublicKey: wal.PublicKey}
	if reveal {
		out.Secret = wal.Secret.Reveal()
		out.Mnemonic = wal.Mnemonic
	}
	return out
}

func printResult(w io.Writer, res domain.TransactionResult) {
	status := "OK"
	if !res.Success {
		status = "FAIL"
	}
	fmt.Fprintf(w, "[%s] %s\n", status, res.Message)
	if res.Hash != "" {
		fmt.Fprintf(w, "Hash:    %s\n", res.Hash)
	}
	if res.ReceiptID != "" {
		fmt.Fprintf(w, "Receipt: %s\n", res.ReceiptID)
	}
}

func printReceipts(w io.Writer, rs []domain.Receipt) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "(no receipts found)")
		return
	}
	for _, r := range rs {
		fmt.Fprintf(w, "- %s  %s %s %s -> %s\n", r.SubmittedAt.Format("2006-01-02 15:04:05Z"), r.Operation, r.Amount, r.Asset, r.Destination)
		fmt.Fprintf(w, "  hash: %s  id: %s\n", r.Hash, r.ID)
		if r.Memo != "" {
			fmt.Fprintf(w, "  memo: %s\n", r.Memo)
		}
	}
}
