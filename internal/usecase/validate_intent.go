package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

// StroopDecimals is the number of fractional digits a Stellar amount can carry.
const StroopDecimals = 7

const (
	FieldSecret    = "secret"
	FieldRecipient = "recipient"
	FieldAmount    = "amount"
)

// IntentValidator checks transfer form fields locally. It performs no I/O.
type IntentValidator struct {
	keys ports.KeyParser
}

func NewIntentValidator(keys ports.KeyParser) *IntentValidator {
	return &IntentValidator{keys: keys}
}

// Validate returns nil or a *domain.ValidationError for the first failing check.
func (v *IntentValidator) Validate(f domain.TransferFields) error {
	secret := domain.Secret(strings.TrimSpace(f.Secret.Reveal()))
	recipient := strings.TrimSpace(f.Recipient)
	amount := strings.TrimSpace(f.Amount)

	if secret.IsZero() {
		return &domain.ValidationError{Field: FieldSecret, Message: "secret key required"}
	}
	if recipient == "" {
		return &domain.ValidationError{Field: FieldRecipient, Message: "recipient address required"}
	}
	if amount == "" {
		return &domain.ValidationError{Field: FieldAmount, Message: "amount required"}
	}
	if _, err := ParseAmount(amount); err != nil {
		return &domain.ValidationError{Field: FieldAmount, Message: "invalid amount"}
	}
	if _, err := v.keys.DeriveAddress(secret); err != nil {
		return &domain.ValidationError{Field: FieldSecret, Message: "invalid secret key"}
	}
	if err := v.keys.ValidateAddress(recipient); err != nil {
		return &domain.ValidationError{Field: FieldRecipient, Message: "invalid recipient address"}
	}
	return nil
}

// MaxAmount is the largest amount an int64 stroop count can carry.
var MaxAmount = decimal.RequireFromString("922337203685.4775807")

const (
	maxAmountIntDigits = 12
	// Bounds the scale before any arithmetic; rescaling "1e-999999999"
	// would allocate a huge power of ten.
	maxAmountScale = 64
)

// ParseAmount accepts a positive decimal with at most seven fractional
// digits that fits in int64 stroops.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &domain.OpError{Op: "amount.parse", Kind: domain.KindInvalidInput, Err: err}
	}

	// Exponent and digit count come straight from the parsed form, so these
	// checks stay cheap for inputs like "1e999999999".
	exp := int(d.Exponent())
	digits := len(d.Coefficient().Text(10))
	if d.IsNegative() {
		digits--
	}
	if exp < -maxAmountScale || digits > maxAmountScale || digits+exp > maxAmountIntDigits {
		return decimal.Zero, &domain.OpError{Op: "amount.parse", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}

	if !d.IsPositive() {
		return decimal.Zero, &domain.OpError{Op: "amount.parse", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}
	if !d.Equal(d.Truncate(StroopDecimals)) {
		return decimal.Zero, &domain.OpError{Op: "amount.parse", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, &domain.OpError{Op: "amount.parse", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}
	return d, nil
}

// FormatAmount renders an amount the way the network expects it.
func FormatAmount(d decimal.Decimal) string {
	return d.Truncate(StroopDecimals).String()
}
