package ports

import "github.com/aalvaropc/lumen/internal/domain"

// TransactionSigner builds and signs a single-operation transaction locally.
type TransactionSigner interface {
	Sign(plan domain.TxPlan) (domain.SignedEnvelope, error)
}
