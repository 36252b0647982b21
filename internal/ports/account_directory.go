package ports

import (
	"context"

	"github.com/aalvaropc/lumen/internal/domain"
)

// AccountDirectory looks up accounts on the network.
// Errors are *domain.OpError with Kind not_found, bad_response or transport.
type AccountDirectory interface {
	LoadAccount(ctx context.Context, accountID string) (domain.Account, error)
}

// FeeSource reports the current base fee in stroops.
type FeeSource interface {
	FetchBaseFee(ctx context.Context) (int64, error)
}

// TransactionSubmitter submits a signed envelope and returns the network hash.
type TransactionSubmitter interface {
	Submit(ctx context.Context, env domain.SignedEnvelope) (string, error)
}
