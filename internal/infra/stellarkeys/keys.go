// Package stellarkeys adapts the Stellar SDK keypair and SEP-5 derivation
// packages to the lumen key ports.
package stellarkeys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/stellar/go/keypair"
	"github.com/tyler-smith/go-bip39"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// PrimaryAccountPath is the SEP-5 derivation path of the first account.
const PrimaryAccountPath = "m/44'/148'/0'"

// Parser validates strkey-encoded seeds and addresses.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

var _ ports.KeyParser = (*Parser)(nil)

func (p *Parser) DeriveAddress(secret domain.Secret) (string, error) {
	kp, err := keypair.ParseFull(secret.Reveal())
	if err != nil {
		return "", fmt.Errorf("parse secret seed: %w", err)
	}
	return kp.Address(), nil
}

func (p *Parser) ValidateAddress(s string) error {
	if _, err := keypair.ParseAddress(s); err != nil {
		return fmt.Errorf("parse address: %w", err)
	}
	return nil
}

// Generator creates SEP-5 wallets from fresh BIP-39 mnemonics.
type Generator struct {
	entropyBits int
	passphrase  string
}

type Option func(*Generator)

// WithEntropyBits sets the mnemonic entropy (128 gives 12 words, 256 gives 24).
func WithEntropyBits(bits int) Option {
	return func(g *Generator) { g.entropyBits = bits }
}

// WithPassphrase sets the optional BIP-39 passphrase.
func WithPassphrase(p string) Option {
	return func(g *Generator) { g.passphrase = p }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{entropyBits: MnemonicEntropyBits}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ ports.WalletGenerator = (*Generator)(nil)

func (g *Generator) Generate() (domain.Wallet, error) {
	entropy, err := bip39.NewEntropy(g.entropyBits)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("generate mnemonic: %w", err)
	}
	return g.Recover(mnemonic)
}

func (g *Generator) Recover(mnemonic string) (domain.Wallet, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return domain.Wallet{}, &domain.OpError{
			Op:   "stellarkeys.recover",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("invalid mnemonic"),
		}
	}

	seed := bip39.NewSeed(mnemonic, g.passphrase)
	key, err := derivation.DeriveForPath(PrimaryAccountPath, seed)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("derive %s: %w", PrimaryAccountPath, err)
	}

	var raw [32]byte
	copy(raw[:], key.Key)
	kp, err := keypair.FromRawSeed(raw)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("keypair from seed: %w", err)
	}

	return domain.Wallet{
		PublicKey: kp.Address(),
		Secret:    domain.Secret(kp.Seed()),
		Mnemonic:  mnemonic,
	}, nil
}
