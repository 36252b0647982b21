// Package txbuild turns a domain.TxPlan into a signed Stellar envelope using
// the SDK's txnbuild package.
package txbuild

import (
	"errors"
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

type Signer struct{}

func NewSigner() *Signer { return &Signer{} }

var _ ports.TransactionSigner = (*Signer)(nil)

func (s *Signer) Sign(plan domain.TxPlan) (domain.SignedEnvelope, error) {
	if plan.NetworkPassphrase == "" {
		return domain.SignedEnvelope{}, opErr("txbuild.sign", domain.KindInvalidConfig, errors.New("network passphrase is empty"))
	}

	kp, err := keypair.ParseFull(plan.Source.Reveal())
	if err != nil {
		return domain.SignedEnvelope{}, opErr("txbuild.parse_source", domain.KindInvalidInput, err)
	}

	op, err := buildOperation(plan)
	if err != nil {
		return domain.SignedEnvelope{}, err
	}

	fee := plan.BaseFee
	if fee < txnbuild.MinBaseFee {
		fee = txnbuild.MinBaseFee
	}

	timeout := plan.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultSubmissionTimeout
	}

	params := txnbuild.TransactionParams{
		SourceAccount: &txnbuild.SimpleAccount{
			AccountID: plan.SourceAccount,
			Sequence:  plan.Sequence,
		},
		IncrementSequenceNum: true,
		BaseFee:              fee,
		Operations:           []txnbuild.Operation{op},
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(timeout.Seconds())),
		},
	}
	if plan.Memo != "" {
		params.Memo = txnbuild.MemoText(plan.Memo)
	}

	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		return domain.SignedEnvelope{}, opErr("txbuild.build", domain.KindInvalidInput, err)
	}

	tx, err = tx.Sign(plan.NetworkPassphrase, kp)
	if err != nil {
		return domain.SignedEnvelope{}, opErr("txbuild.sign", domain.KindExecution, err)
	}

	b64, err := tx.Base64()
	if err != nil {
		return domain.SignedEnvelope{}, opErr("txbuild.encode", domain.KindExecution, err)
	}
	hash, err := tx.HashHex(plan.NetworkPassphrase)
	if err != nil {
		return domain.SignedEnvelope{}, opErr("txbuild.hash", domain.KindExecution, err)
	}

	return domain.SignedEnvelope{XDR: b64, Hash: hash}, nil
}

func buildOperation(plan domain.TxPlan) (txnbuild.Operation, error) {
	switch plan.Operation {
	case domain.OperationCreateAccount:
		return &txnbuild.CreateAccount{
			Destination: plan.Destination,
			Amount:      plan.Amount,
		}, nil
	case domain.OperationTransfer:
		return &txnbuild.Payment{
			Destination: plan.Destination,
			Amount:      plan.Amount,
			Asset:       txnbuild.NativeAsset{},
		}, nil
	default:
		return nil, opErr("txbuild.operation", domain.KindInvalidInput, fmt.Errorf("unsupported operation %q", plan.Operation))
	}
}

func opErr(op string, kind domain.ErrorKind, err error) error {
	return &domain.OpError{Op: op, Kind: kind, Err: err}
}
