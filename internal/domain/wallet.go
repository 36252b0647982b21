package domain

import "time"

// Wallet is a freshly generated keypair plus the mnemonic it derives from.
// It lives only in memory; nothing in lumen writes it to disk.
type Wallet struct {
	PublicKey string `json:"public_key"`
	Secret    Secret `json:"secret"`
	Mnemonic  string `json:"-"`
}

// Receipt records a successful submission. It carries no secret material.
type Receipt struct {
	ID          string        `json:"id"`
	Hash        string        `json:"hash"`
	Operation   OperationType `json:"operation"`
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Amount      string        `json:"amount"`
	Asset       string        `json:"asset"`
	Memo        string        `json:"memo,omitempty"`
	Network     string        `json:"network"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
