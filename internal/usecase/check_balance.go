package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

const (
	MsgAccountNotFound = "account not found, check the key"
	MsgNetworkDown     = "could not reach the Stellar network, try again"
)

// CheckBalance resolves any key to an account and returns its normalized balances.
type CheckBalance struct {
	classifier *KeyClassifier
	accounts   ports.AccountDirectory
	log        *slog.Logger
}

func NewCheckBalance(classifier *KeyClassifier, accounts ports.AccountDirectory, log *slog.Logger) *CheckBalance {
	if log == nil {
		log = discardLogger()
	}
	return &CheckBalance{classifier: classifier, accounts: accounts, log: log}
}

// Execute returns an *OpError whose message is suitable for display when
// the key is invalid or the account cannot be loaded.
func (uc *CheckBalance) Execute(ctx context.Context, rawKey string) (domain.BalanceReport, error) {
	c := uc.classifier.Classify(rawKey)
	if !c.Valid() {
		return domain.BalanceReport{}, &domain.OpError{
			Op:   "balance.classify",
			Kind: domain.KindInvalidInput,
			Err:  errors.New(c.ErrorMessage),
		}
	}

	log := uc.log.With("account", c.DerivedPublicKey, "key_kind", string(c.Kind))

	acct, err := uc.accounts.LoadAccount(ctx, c.DerivedPublicKey)
	if err != nil {
		log.Warn("balance.load.failed", "error", err)
		return domain.BalanceReport{}, balanceError(c.DerivedPublicKey, err)
	}

	balances := domain.NormalizeBalances(acct.Balances)
	log.Info("balance.load.ok", "lines", len(balances))

	return domain.BalanceReport{
		AccountID: c.DerivedPublicKey,
		KeyKind:   c.Kind,
		Balances:  balances,
	}, nil
}

func balanceError(account string, err error) error {
	switch {
	case domain.IsKind(err, domain.KindNotFound):
		return &domain.OpError{Op: "balance.load", Kind: domain.KindNotFound, Path: account, Err: errors.New(MsgAccountNotFound)}
	case domain.IsKind(err, domain.KindBadResponse), domain.IsKind(err, domain.KindTransport):
		return &domain.OpError{Op: "balance.load", Kind: domain.KindBadResponse, Path: account, Err: errors.New(MsgNetworkDown)}
	default:
		return &domain.OpError{Op: "balance.load", Kind: domain.KindExecution, Path: account, Err: errors.New("unexpected error: " + causeOf(err))}
	}
}
