package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/infra/stellarkeys"
)

const (
	sepMnemonic = "illness spike retreat truth genius clock brain pass fit cave bargain toe"
	sepAddress  = "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"
	sepSecret   = "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func initWorkspace(t *testing.T, lumenYAML string) string {
	t.Helper()
	root := t.TempDir()
	if _, err := run(t, "", "init", "-w", root); err != nil {
		t.Fatalf("init: %v", err)
	}
	if lumenYAML != "" {
		if err := os.WriteFile(filepath.Join(root, "lumen.yaml"), []byte(lumenYAML), 0o644); err != nil {
			t.Fatalf("write lumen.yaml: %v", err)
		}
	}
	return root
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"init", "wallet", "key", "balance", "send", "receipts", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "workspace"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestSendCmd_Flags(t *testing.T) {
	cmd := sendCmd(&rootOptions{})
	for _, flag := range []string{"to", "amount", "memo", "asset", "create-account"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on send command", flag)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "lumen ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- init ---

func TestInit_CreatesWorkspace(t *testing.T) {
	root := initWorkspace(t, "")
	for _, p := range []string{"lumen.yaml", ".gitignore", "receipts"} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}
}

// --- key inspect ---

func TestKeyInspect(t *testing.T) {
	ws := t.TempDir()

	out, err := run(t, "", "key", "inspect", sepAddress, "-w", ws)
	if err != nil {
		t.Fatalf("inspect public: %v", err)
	}
	if !strings.Contains(out, "public key") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, "", "key", "inspect", sepSecret, "-w", ws)
	if err != nil {
		t.Fatalf("inspect secret: %v", err)
	}
	if !strings.Contains(out, "secret key") || !strings.Contains(out, sepAddress) {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, sepSecret) {
		t.Fatalf("secret echoed back: %q", out)
	}

	out, err = run(t, "", "key", "inspect", "hello", "-w", ws, "--format", "json")
	if err == nil {
		t.Fatalf("expected error for invalid key")
	}
	if !strings.Contains(out, `"kind": "invalid"`) {
		t.Fatalf("unexpected json %q", out)
	}
}

// --- wallet ---

func TestWalletRecover_FromStdin(t *testing.T) {
	out, err := run(t, sepMnemonic+"\n", "wallet", "recover", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if strings.TrimSpace(out) != sepAddress {
		t.Fatalf("expected %s, got %q", sepAddress, out)
	}
}

func TestWalletRecover_WithPassphrase(t *testing.T) {
	want, err := stellarkeys.NewGenerator(stellarkeys.WithPassphrase("p4ss phrase")).Recover(sepMnemonic)
	if err != nil {
		t.Fatalf("reference recover: %v", err)
	}

	out, err := run(t, sepMnemonic+"\n", "wallet", "recover", "--passphrase", "p4ss phrase", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	got := strings.TrimSpace(out)
	if got != want.PublicKey {
		t.Fatalf("expected %s, got %q", want.PublicKey, got)
	}
	if got == sepAddress {
		t.Fatalf("passphrase was ignored")
	}
}

func TestWalletNew_HidesSecretByDefault(t *testing.T) {
	out, err := run(t, "", "wallet", "new", "-w", t.TempDir(), "--format", "json")
	if err != nil {
		t.Fatalf("wallet new: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !strings.HasPrefix(got["public_key"], "G") {
		t.Fatalf("unexpected public key %q", got["public_key"])
	}
	if _, ok := got["secret"]; ok {
		t.Fatalf("secret must not be printed without --reveal")
	}

	out, err = run(t, "", "wallet", "new", "-w", t.TempDir(), "--reveal")
	if err != nil {
		t.Fatalf("wallet new --reveal: %v", err)
	}
	if !strings.Contains(out, "Mnemonic:") || len(strings.Fields(out[strings.Index(out, "Mnemonic:"):])) != 25 {
		t.Fatalf("expected 24-word mnemonic, got %q", out)
	}
}

// --- balance ---

const accountJSON = `{
  "id": "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6",
  "account_id": "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6",
  "sequence": "4294967296",
  "balances": [
    {"balance": "12.5000000", "asset_type": "credit_alphanum4", "asset_code": "USDC", "asset_issuer": "GA5ZSEJYB37JRC5AVCIA5MOP4RHTM335X2KGX3IHOJAPP5RE34K4KZVN"},
    {"balance": "9999.0000000", "asset_type": "native"}
  ]
}`

func horizonWorkspace(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return initWorkspace(t, "lumen:\n  network:\n    name: custom\n    horizon_url: "+srv.URL+"\n    passphrase: Test SDF Network ; September 2015\n")
}

func TestBalance_PrintsNormalizedBalances(t *testing.T) {
	root := horizonWorkspace(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/"+sepAddress {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(accountJSON))
	})

	out, err := run(t, "", "balance", sepSecret, "-w", root)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !strings.Contains(out, "derived from secret key") {
		t.Fatalf("expected derived note, got %q", out)
	}
	xlm := strings.Index(out, "XLM")
	usdc := strings.Index(out, "USDC")
	if xlm < 0 || usdc < 0 || xlm > usdc {
		t.Fatalf("expected XLM listed before USDC, got %q", out)
	}
	if !strings.Contains(out, "9999") || strings.Contains(out, "9999.0000000") {
		t.Fatalf("expected trimmed amount, got %q", out)
	}

	out, err = run(t, "", "balance", sepAddress, "-w", root, "--format", "json")
	if err != nil {
		t.Fatalf("balance json: %v", err)
	}
	var report domain.BalanceReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Balances) != 2 || report.Balances[0].DisplayCode != "XLM" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestBalance_AccountNotFound(t *testing.T) {
	root := horizonWorkspace(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"https://stellar.org/horizon-errors/not_found","title":"Resource Missing","status":404}`))
	})

	_, err := run(t, "", "balance", sepAddress, "-w", root)
	if err == nil || !strings.Contains(err.Error(), "account not found, check the key") {
		t.Fatalf("expected not found message, got %v", err)
	}
}

// --- send ---

func TestSend_ValidationRunsBeforeNetwork(t *testing.T) {
	t.Setenv(SecretEnv, "")
	ws := t.TempDir()

	_, err := run(t, "", "send", "--to", sepAddress, "--amount", "1", "-w", ws)
	if err == nil || err.Error() != "secret key required" {
		t.Fatalf("expected secret key required, got %v", err)
	}

	_, err = run(t, sepSecret+"\n", "send", "--to", sepAddress, "--amount", "1.123456789", "-w", ws)
	if err == nil || err.Error() != "invalid amount" {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestSend_UnsupportedAsset(t *testing.T) {
	t.Setenv(SecretEnv, sepSecret)

	out, err := run(t, "", "send", "--to", sepAddress, "--amount", "1", "--asset", "USDC", "-w", t.TempDir())
	if err == nil || err.Error() != "unsupported asset" {
		t.Fatalf("expected unsupported asset, got %v", err)
	}
	if !strings.Contains(out, "[FAIL] unsupported asset") {
		t.Fatalf("unexpected output %q", out)
	}
}

// --- receipts ---

func TestReceiptsList(t *testing.T) {
	root := initWorkspace(t, "")

	out, err := run(t, "", "receipts", "list", "-w", root)
	if err != nil {
		t.Fatalf("receipts list: %v", err)
	}
	if !strings.Contains(out, "(no receipts found)") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := run(t, "", "receipts", "list", "-w", t.TempDir()); err == nil {
		t.Fatalf("expected workspace error outside a workspace")
	}
}

func TestFormatBalance(t *testing.T) {
	cases := map[string]string{
		"100.0000000": "100",
		"12.5000000":  "12.5",
		"oops":        "oops",
	}
	for in, want := range cases {
		if got := formatBalance(in); got != want {
			t.Errorf("formatBalance(%q)=%q want %q", in, got, want)
		}
	}
}
