package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/lumen/internal/buildinfo"
	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/infra/config"
	"github.com/aalvaropc/lumen/internal/infra/horizon"
	"github.com/aalvaropc/lumen/internal/infra/httpclient"
	"github.com/aalvaropc/lumen/internal/infra/logger"
	"github.com/aalvaropc/lumen/internal/infra/receiptstore"
	"github.com/aalvaropc/lumen/internal/infra/stellarkeys"
	"github.com/aalvaropc/lumen/internal/infra/txbuild"
	"github.com/aalvaropc/lumen/internal/infra/workspacefinder"
	"github.com/aalvaropc/lumen/internal/ports"
	"github.com/aalvaropc/lumen/internal/usecase"
)

// app is the wired object graph shared by every command.
type app struct {
	root     string
	inWS     bool
	cfg      domain.Config
	receipts ports.ReceiptStore

	classifier   *usecase.KeyClassifier
	validator    *usecase.IntentValidator
	createWallet *usecase.CreateWallet
	checkBalance *usecase.CheckBalance
	submit       *usecase.SubmitTransaction
}

// loadApp works outside a workspace too: config falls back to testnet
// defaults and receipts are not written.
func loadApp(opts *rootOptions) (*app, error) {
	root, inWS := resolveWorkspaceRoot(opts.workspace)

	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	if err != nil {
		inWS = false
	}

	log := logger.L()

	hcfg := httpclient.DefaultConfig()
	hcfg.UserAgent = buildinfo.UserAgent()
	hz := horizon.New(cfg.Network.HorizonURL, httpclient.New(hcfg),
		horizon.WithLogger(log),
		horizon.WithAppName(buildinfo.AppName, buildinfo.Version),
	)

	keys := stellarkeys.NewParser()
	classifier := usecase.NewKeyClassifier(keys)

	a := &app{
		root:         root,
		inWS:         inWS,
		cfg:          cfg,
		classifier:   classifier,
		validator:    usecase.NewIntentValidator(keys),
		createWallet: usecase.NewCreateWallet(stellarkeys.NewGenerator(), cfg.Wallet.KeygenDelay),
		checkBalance: usecase.NewCheckBalance(classifier, hz, log),
	}

	submitOpts := []usecase.SubmitOption{
		usecase.WithLogger(log),
		usecase.WithNetwork(cfg.Network.Name, cfg.Network.Passphrase),
		usecase.WithSubmissionTimeout(cfg.Submission.Timeout),
	}
	if inWS && cfg.Receipts.Enabled {
		a.receipts = receiptstore.NewJSONStore(root, cfg)
		submitOpts = append(submitOpts, usecase.WithReceipts(a.receipts))
	}
	a.submit = usecase.NewSubmitTransaction(keys, hz, hz, txbuild.NewSigner(), hz, submitOpts...)

	return a, nil
}

// recoverer re-derives wallets, salting the BIP-39 seed with passphrase when set.
func (a *app) recoverer(passphrase string) *usecase.CreateWallet {
	if passphrase == "" {
		return a.createWallet
	}
	return usecase.NewCreateWallet(stellarkeys.NewGenerator(stellarkeys.WithPassphrase(passphrase)), 0)
}

// resolveWorkspaceRoot returns the explicit --workspace path, or the nearest
// directory holding lumen.yaml, or the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return w, false
		}
		return abs, true
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return workspacefinder.NewFinder().ResolveRoot(wd)
}

func requireWorkspace(a *app) error {
	if !a.inWS {
		return fmt.Errorf("workspace not found from %q (tip: run `lumen init`): %w", a.root, domain.ErrNotFound)
	}
	return nil
}
