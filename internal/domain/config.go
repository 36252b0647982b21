package domain

import "time"

// Well-known network names.
const (
	NetworkTestnet = "testnet"
	NetworkPublic  = "public"
	NetworkCustom  = "custom"
)

// Config represents the lumen configuration loaded from lumen.yaml.
type Config struct {
	Network    NetworkConfig
	Submission SubmissionConfig
	Wallet     WalletConfig
	Display    DisplayConfig
	Receipts   ReceiptsConfig
}

// NetworkConfig is the single network lumen talks to.
type NetworkConfig struct {
	Name       string
	HorizonURL string
	Passphrase string
}

type SubmissionConfig struct {
	Timeout time.Duration
}

type WalletConfig struct {
	// KeygenDelay is a UX pacing delay before a new wallet is shown.
	KeygenDelay time.Duration
}

type DisplayConfig struct {
	RevealSecrets bool
}

type ReceiptsConfig struct {
	Enabled bool
	Dir     string
}

// DefaultConfig provides sane defaults if lumen.yaml is partially missing.
// Network URL and passphrase are filled in by the config loader.
func DefaultConfig() Config {
	return Config{
		Network: NetworkConfig{
			Name: NetworkTestnet,
		},
		Submission: SubmissionConfig{Timeout: DefaultSubmissionTimeout},
		Receipts: ReceiptsConfig{
			Enabled: true,
			Dir:     "receipts",
		},
	}
}

// WorkspaceSpec describes where a lumen workspace is initialized.
type WorkspaceSpec struct {
	Root string
}
