package tui

import "github.com/aalvaropc/lumen/internal/domain"

type walletCreatedMsg struct {
	wallet domain.Wallet
	err    error
}

type balanceLoadedMsg struct {
	report domain.BalanceReport
	err    error
}

type txDoneMsg struct {
	result domain.TransactionResult
}

type copiedMsg struct {
	what string
	err  error
}

type clearToastMsg struct {
	seq int
}
