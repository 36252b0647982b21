package domain

import (
	"log/slog"
	"strings"
)

const redacted = "[redacted]"

// KeyLength is the length of a strkey-encoded Stellar address or seed.
const KeyLength = 56

// Secret is a Stellar secret seed (S...). It redacts itself when formatted,
// logged, or marshaled; use Reveal to get the raw value.
type Secret string

func (s Secret) Reveal() string { return string(s) }

func (s Secret) IsZero() bool { return strings.TrimSpace(string(s)) == "" }

// Masked is the placeholder shown in place of a hidden secret.
func (s Secret) Masked() string {
	if s == "" {
		return ""
	}
	return strings.Repeat("•", KeyLength)
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string { return s.String() }

func (s Secret) LogValue() slog.Value { return slog.StringValue(s.String()) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

var _ slog.LogValuer = Secret("")
