package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/lumen/internal/domain"
)

// actionTimeout bounds a single network-backed action started from the UI.
const actionTimeout = 2 * time.Minute

const toastTTL = 3 * time.Second

func cmdCreateWallet(uc WalletCreator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		w, err := uc.Execute(ctx)
		return walletCreatedMsg{wallet: w, err: err}
	}
}

func cmdCheckBalance(uc BalanceChecker, key string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		r, err := uc.Execute(ctx, key)
		return balanceLoadedMsg{report: r, err: err}
	}
}

func cmdSubmit(uc TransactionSubmitter, intent domain.TransactionIntent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		return txDoneMsg{result: uc.Execute(ctx, intent)}
	}
}

func cmdCopy(write func(string) error, what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: write(text)}
	}
}

func clearToastAfter(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
