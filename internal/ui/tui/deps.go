package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/lumen/internal/domain"
)

// The TUI only needs these slices of the usecases.
type (
	KeyClassifier interface {
		Classify(raw string) domain.KeyClassification
	}
	IntentValidator interface {
		Validate(f domain.TransferFields) error
	}
	WalletCreator interface {
		Execute(ctx context.Context) (domain.Wallet, error)
	}
	BalanceChecker interface {
		Execute(ctx context.Context, rawKey string) (domain.BalanceReport, error)
	}
	TransactionSubmitter interface {
		Execute(ctx context.Context, intent domain.TransactionIntent) domain.TransactionResult
	}
)

type Deps struct {
	Classifier   KeyClassifier
	Validator    IntentValidator
	CreateWallet WalletCreator
	CheckBalance BalanceChecker
	Submit       TransactionSubmitter

	// Clipboard defaults to the system clipboard.
	Clipboard func(text string) error

	Logger        *slog.Logger
	RevealSecrets bool
	Network       string
	Debug         bool
}
