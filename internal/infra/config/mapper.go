package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/stellar/go/network"

	"github.com/aalvaropc/lumen/internal/domain"
)

const (
	TestnetHorizonURL = "https://horizon-testnet.stellar.org"
	PublicHorizonURL  = "https://horizon.stellar.org"
)

// mapConfig applies parsed values on top of defaults and resolves the
// network name into a horizon URL and passphrase.
func mapConfig(path string, y yamlConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	l := y.Lumen

	if name := strings.ToLower(strings.TrimSpace(l.Network.Name)); name != "" {
		cfg.Network.Name = name
	}
	cfg.Network.HorizonURL = strings.TrimSpace(l.Network.HorizonURL)
	cfg.Network.Passphrase = strings.TrimSpace(l.Network.Passphrase)

	if l.Submission.TimeoutSeconds != nil {
		if *l.Submission.TimeoutSeconds <= 0 {
			return cfg, invalidField(path, "submission.timeout_seconds", "must be positive")
		}
		cfg.Submission.Timeout = time.Duration(*l.Submission.TimeoutSeconds) * time.Second
	}
	if l.Wallet.KeygenDelayMS != nil {
		if *l.Wallet.KeygenDelayMS < 0 {
			return cfg, invalidField(path, "wallet.keygen_delay_ms", "must not be negative")
		}
		cfg.Wallet.KeygenDelay = time.Duration(*l.Wallet.KeygenDelayMS) * time.Millisecond
	}
	if l.Display.RevealSecrets != nil {
		cfg.Display.RevealSecrets = *l.Display.RevealSecrets
	}
	if l.Receipts.Enabled != nil {
		cfg.Receipts.Enabled = *l.Receipts.Enabled
	}
	if dir := strings.TrimSpace(l.Receipts.Dir); dir != "" {
		cfg.Receipts.Dir = dir
	}

	if err := ResolveNetwork(&cfg.Network); err != nil {
		return cfg, invalidField(path, "network", err.Error())
	}
	return cfg, nil
}

// ResolveNetwork fills the horizon URL and passphrase for well-known
// network names. Explicit values always win.
func ResolveNetwork(n *domain.NetworkConfig) error {
	var url, pass string
	switch n.Name {
	case domain.NetworkTestnet:
		url, pass = TestnetHorizonURL, network.TestNetworkPassphrase
	case domain.NetworkPublic:
		url, pass = PublicHorizonURL, network.PublicNetworkPassphrase
	}

	if n.HorizonURL == "" {
		n.HorizonURL = url
	}
	if n.Passphrase == "" {
		n.Passphrase = pass
	}

	if n.HorizonURL == "" || n.Passphrase == "" {
		return fmt.Errorf("network %q needs horizon_url and passphrase", n.Name)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
