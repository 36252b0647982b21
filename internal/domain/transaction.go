package domain

import "time"

// OperationType selects which Stellar operation a submission builds.
type OperationType string

const (
	OperationTransfer      OperationType = "transfer"
	OperationCreateAccount OperationType = "create_account"
)

// NativeAssetSelector is the only asset selector transfers accept.
const NativeAssetSelector = "XLM"

// MaxMemoBytes is the longest text memo the network accepts.
const MaxMemoBytes = 28

// DefaultSubmissionTimeout bounds how long a signed transaction stays valid.
const DefaultSubmissionTimeout = 30 * time.Second

// ParseOperationType maps user input to an OperationType.
func ParseOperationType(s string) (OperationType, bool) {
	switch OperationType(s) {
	case OperationTransfer, OperationCreateAccount:
		return OperationType(s), true
	default:
		return "", false
	}
}

// TransferFields is the raw snapshot of the transfer form at submit time.
type TransferFields struct {
	Secret    Secret
	Recipient string
	Amount    string
}

// TransactionIntent is a validated request to move funds or fund an account.
// It is built at submit time and never persisted.
type TransactionIntent struct {
	SourceSecret  Secret
	DestinationID string
	Amount        string
	Operation     OperationType
	Memo          string
	AssetSelector string
}

// TransactionResult is produced exactly once per submission attempt.
type TransactionResult struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Operation OperationType `json:"operation,omitempty"`
	Hash      string        `json:"hash,omitempty"`
	ReceiptID string        `json:"receipt_id,omitempty"`
}

// Failed builds a failed result.
func Failed(msg string) TransactionResult {
	return TransactionResult{Success: false, Message: msg}
}

// Account is the subset of account state the wallet needs.
type Account struct {
	ID       string
	Sequence int64
	Balances []RawBalance
}

// TxPlan is everything needed to build and sign one single-operation
// transaction.
type TxPlan struct {
	Source            Secret
	SourceAccount     string
	Sequence          int64
	BaseFee           int64
	Operation         OperationType
	Destination       string
	Amount            string
	Memo              string
	Timeout           time.Duration
	NetworkPassphrase string
}

// SignedEnvelope is a signed transaction ready for submission.
type SignedEnvelope struct {
	XDR  string
	Hash string
}
