package usecase

import (
	"strings"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

const (
	msgEnterKey     = "enter a Stellar key"
	msgInvalidKey   = "invalid key"
	msgKeyLength    = "a Stellar key must be exactly 56 characters"
	publicKeyPrefix = 'G'
	secretKeyPrefix = 'S'
)

// KeyClassifier tells public addresses, secret seeds and garbage apart.
// It never returns an error: every outcome is a KeyClassification.
type KeyClassifier struct {
	keys         ports.KeyParser
	strictLength bool
}

type ClassifierOption func(*KeyClassifier)

// WithStrictLength rejects anything that is not 56 characters before parsing.
func WithStrictLength(strict bool) ClassifierOption {
	return func(c *KeyClassifier) { c.strictLength = strict }
}

func NewKeyClassifier(keys ports.KeyParser, opts ...ClassifierOption) *KeyClassifier {
	c := &KeyClassifier{keys: keys}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *KeyClassifier) Classify(raw string) domain.KeyClassification {
	key := strings.TrimSpace(raw)
	if key == "" {
		return domain.InvalidKey(msgEnterKey)
	}
	if c.strictLength && len(key) != domain.KeyLength {
		return domain.InvalidKey(msgKeyLength)
	}

	switch key[0] {
	case publicKeyPrefix:
		if err := c.keys.ValidateAddress(key); err != nil {
			return domain.InvalidKey(msgInvalidKey + ": " + err.Error())
		}
		return domain.KeyClassification{Kind: domain.KeyPublic, DerivedPublicKey: key}

	case secretKeyPrefix:
		addr, err := c.keys.DeriveAddress(domain.Secret(key))
		if err != nil {
			return domain.InvalidKey(msgInvalidKey + ": " + err.Error())
		}
		return domain.KeyClassification{Kind: domain.KeyPrivate, DerivedPublicKey: addr}

	default:
		return domain.InvalidKey(msgInvalidKey)
	}
}
