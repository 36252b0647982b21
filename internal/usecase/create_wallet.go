package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

// CreateWallet generates a new keypair and mnemonic. Nothing is persisted.
type CreateWallet struct {
	gen   ports.WalletGenerator
	delay time.Duration
}

// NewCreateWallet waits delay before generating; zero disables the pause.
func NewCreateWallet(gen ports.WalletGenerator, delay time.Duration) *CreateWallet {
	return &CreateWallet{gen: gen, delay: delay}
}

func (uc *CreateWallet) Execute(ctx context.Context) (domain.Wallet, error) {
	if uc.delay > 0 {
		t := time.NewTimer(uc.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.Wallet{}, &domain.OpError{Op: "wallet.create", Kind: domain.KindExecution, Err: ctx.Err()}
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.Wallet{}, &domain.OpError{Op: "wallet.create", Kind: domain.KindExecution, Err: err}
	}

	w, err := uc.gen.Generate()
	if err != nil {
		return domain.Wallet{}, &domain.OpError{Op: "wallet.create", Kind: domain.KindExecution, Err: err}
	}
	return w, nil
}

// Recover re-derives the wallet for a mnemonic.
func (uc *CreateWallet) Recover(mnemonic string) (domain.Wallet, error) {
	if strings.TrimSpace(mnemonic) == "" {
		return domain.Wallet{}, &domain.OpError{Op: "wallet.recover", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}
	return uc.gen.Recover(mnemonic)
}
