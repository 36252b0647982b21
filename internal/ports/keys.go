package ports

import "github.com/aalvaropc/lumen/internal/domain"

// KeyParser wraps the SDK's strkey parsing.
type KeyParser interface {
	// DeriveAddress parses a secret seed and returns its public address.
	DeriveAddress(secret domain.Secret) (string, error)
	// ValidateAddress reports whether s is a valid public address.
	ValidateAddress(s string) error
}

// WalletGenerator creates new keypairs with a recovery mnemonic.
type WalletGenerator interface {
	Generate() (domain.Wallet, error)
	Recover(mnemonic string) (domain.Wallet, error)
}
