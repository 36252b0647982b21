package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

const (
	MsgSubmitted          = "transaction submitted to the Stellar network"
	MsgUnsupportedAsset   = "unsupported asset"
	MsgMemoTooLong        = "memo must be at most 28 bytes"
	MsgDestinationMissing = "destination account does not exist"
	MsgDestinationExists  = "destination account already exists"
	msgTxErrorPrefix      = "transaction error: "
)

// SubmitTransaction checks the destination, builds a single operation,
// signs it and submits it. Outcomes are always a TransactionResult.
type SubmitTransaction struct {
	keys      ports.KeyParser
	accounts  ports.AccountDirectory
	fees      ports.FeeSource
	signer    ports.TransactionSigner
	submitter ports.TransactionSubmitter

	receipts    ports.ReceiptStore
	log         *slog.Logger
	now         func() time.Time
	timeout     time.Duration
	passphrase  string
	networkName string
}

type SubmitOption func(*SubmitTransaction)

func WithLogger(l *slog.Logger) SubmitOption {
	return func(uc *SubmitTransaction) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithReceipts persists a receipt after every successful submission.
func WithReceipts(store ports.ReceiptStore) SubmitOption {
	return func(uc *SubmitTransaction) { uc.receipts = store }
}

// WithNetwork sets the passphrase transactions are signed for.
func WithNetwork(name, passphrase string) SubmitOption {
	return func(uc *SubmitTransaction) {
		uc.networkName = name
		uc.passphrase = passphrase
	}
}

func WithSubmissionTimeout(d time.Duration) SubmitOption {
	return func(uc *SubmitTransaction) {
		if d > 0 {
			uc.timeout = d
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SubmitOption {
	return func(uc *SubmitTransaction) { uc.now = now }
}

func NewSubmitTransaction(
	keys ports.KeyParser,
	accounts ports.AccountDirectory,
	fees ports.FeeSource,
	signer ports.TransactionSigner,
	submitter ports.TransactionSubmitter,
	opts ...SubmitOption,
) *SubmitTransaction {
	uc := &SubmitTransaction{
		keys:      keys,
		accounts:  accounts,
		fees:      fees,
		signer:    signer,
		submitter: submitter,
		log:       discardLogger(),
		now:       time.Now,
		timeout:   domain.DefaultSubmissionTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *SubmitTransaction) Execute(ctx context.Context, intent domain.TransactionIntent) (res domain.TransactionResult) {
	op := intent.Operation
	if op == "" {
		op = domain.OperationTransfer
	}
	log := uc.log.With("operation", string(op), "destination", intent.DestinationID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("tx.panic", "panic", fmt.Sprint(r))
			res = domain.Failed(msgTxErrorPrefix + "unexpected failure")
		}
	}()

	log.Info("tx.submit.start", "secret", intent.SourceSecret)

	source, err := uc.keys.DeriveAddress(domain.Secret(strings.TrimSpace(intent.SourceSecret.Reveal())))
	if err != nil {
		log.Warn("tx.source.invalid", "error", err)
		return domain.Failed("invalid secret key: " + causeOf(err))
	}
	log = log.With("source", source)

	if msg, ok := planCheck(op, intent); !ok {
		log.Warn("tx.plan.rejected", "reason", msg)
		return domain.Failed(msg)
	}
	amount, err := ParseAmount(intent.Amount)
	if err != nil {
		log.Warn("tx.plan.rejected", "reason", "invalid amount")
		return domain.Failed("invalid amount")
	}

	exists, err := uc.destinationExists(ctx, intent.DestinationID)
	if err != nil {
		log.Error("tx.destination.failed", "error", err)
		return domain.Failed(msgTxErrorPrefix + "could not check destination account: " + causeOf(err))
	}
	log.Debug("tx.destination.checked", "exists", exists)

	switch {
	case op == domain.OperationTransfer && !exists:
		log.Info("tx.rejected", "reason", MsgDestinationMissing)
		return domain.Failed(MsgDestinationMissing)
	case op == domain.OperationCreateAccount && exists:
		log.Info("tx.rejected", "reason", MsgDestinationExists)
		return domain.Failed(MsgDestinationExists)
	}

	acct, err := uc.accounts.LoadAccount(ctx, source)
	if err != nil {
		log.Error("tx.source.load.failed", "error", err)
		return domain.Failed(msgTxErrorPrefix + causeOf(err))
	}

	fee, err := uc.fees.FetchBaseFee(ctx)
	if err != nil {
		log.Error("tx.fee.failed", "error", err)
		return domain.Failed(msgTxErrorPrefix + causeOf(err))
	}

	plan := domain.TxPlan{
		Source:            domain.Secret(strings.TrimSpace(intent.SourceSecret.Reveal())),
		SourceAccount:     source,
		Sequence:          acct.Sequence,
		BaseFee:           fee,
		Operation:         op,
		Destination:       intent.DestinationID,
		Amount:            FormatAmount(amount),
		Memo:              intent.Memo,
		Timeout:           uc.timeout,
		NetworkPassphrase: uc.passphrase,
	}

	env, err := uc.signer.Sign(plan)
	if err != nil {
		log.Error("tx.sign.failed", "error", err)
		return failedAt(op, err)
	}

	hash, err := uc.submitter.Submit(ctx, env)
	if err != nil {
		log.Error("tx.submit.failed", "error", err)
		return failedAt(op, err)
	}
	log.Info("tx.submit.ok", "hash", hash)

	res = domain.TransactionResult{
		Success:   true,
		Message:   MsgSubmitted,
		Operation: op,
		Hash:      hash,
	}
	res.ReceiptID = uc.saveReceipt(log, res, plan)
	return res
}

// destinationExists treats bad_response like not_found. A malformed answer
// about the destination is read as "no such account".
func (uc *SubmitTransaction) destinationExists(ctx context.Context, id string) (bool, error) {
	_, err := uc.accounts.LoadAccount(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case domain.IsKind(err, domain.KindNotFound), domain.IsKind(err, domain.KindBadResponse):
		return false, nil
	default:
		return false, err
	}
}

func (uc *SubmitTransaction) saveReceipt(log *slog.Logger, res domain.TransactionResult, plan domain.TxPlan) string {
	if uc.receipts == nil {
		return ""
	}

	id, err := uc.receipts.SaveReceipt(domain.Receipt{
		Hash:        res.Hash,
		Operation:   res.Operation,
		Source:      plan.SourceAccount,
		Destination: plan.Destination,
		Amount:      plan.Amount,
		Asset:       domain.NativeAssetSelector,
		Memo:        plan.Memo,
		Network:     uc.networkName,
		SubmittedAt: uc.now().UTC(),
	})
	if err != nil {
		log.Warn("tx.receipt.failed", "error", err)
		return ""
	}
	log.Debug("tx.receipt.saved", "receipt_id", id)
	return id
}

// planCheck rejects intents that can never be built.
func planCheck(op domain.OperationType, intent domain.TransactionIntent) (string, bool) {
	if _, ok := domain.ParseOperationType(string(op)); !ok {
		return "unsupported operation", false
	}
	if op == domain.OperationTransfer && !IsNativeAsset(intent.AssetSelector) {
		return MsgUnsupportedAsset, false
	}
	if len(intent.Memo) > domain.MaxMemoBytes {
		return MsgMemoTooLong, false
	}
	return "", true
}

// IsNativeAsset reports whether sel selects lumens. Empty means native.
func IsNativeAsset(sel string) bool {
	sel = strings.TrimSpace(sel)
	return sel == "" || strings.EqualFold(sel, domain.NativeAssetSelector) || strings.EqualFold(sel, "native")
}

func failedAt(op domain.OperationType, err error) domain.TransactionResult {
	res := domain.Failed(msgTxErrorPrefix + causeOf(err))
	res.Operation = op
	return res
}

// causeOf strips the OpError envelope so users see the underlying reason.
func causeOf(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	return err.Error()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
