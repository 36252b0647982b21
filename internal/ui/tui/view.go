package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/lumen/internal/domain"
)

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("lumen") + "  " +
		m.theme.Subtitle.Render("Stellar wallet · "+networkLabel(m.deps.Network))

	var body string
	switch m.active {
	case tabWallet:
		body = m.viewWallet()
	case tabBalance:
		body = m.viewBalance()
	case tabTransfer:
		body = m.viewTransfer()
	}

	status := ""
	if m.busy {
		status = m.spin.View() + " working..."
	} else if m.toast != "" {
		style := m.theme.Success
		if m.toastErr {
			style = m.theme.Error
		}
		status = style.Render(clampString(m.toast, 120))
	}

	return wrap.Render(strings.Join([]string{
		header,
		m.viewTabs(),
		m.theme.Card.Render(body),
		status,
		m.theme.Help.Render(m.helpLine()),
	}, "\n"))
}

func (m model) viewTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := m.theme.Tab
		if t == m.active {
			style = m.theme.ActiveTab
		}
		parts = append(parts, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) viewWallet() string {
	if !m.hasWal {
		return "No wallet yet.\n\nPress n to generate a new keypair with a 24-word mnemonic."
	}

	secret := m.wallet.Secret.Masked()
	if m.revealed {
		secret = m.wallet.Secret.Reveal()
	}

	var b strings.Builder
	b.WriteString(m.theme.Label.Render("Public key") + m.wallet.PublicKey + "\n")
	b.WriteString(m.theme.Label.Render("Secret key") + secret + "\n")
	if m.revealed && m.wallet.Mnemonic != "" {
		b.WriteString("\n" + m.theme.Label.Render("Mnemonic") + "\n")
		b.WriteString(wrapWords(m.wallet.Mnemonic, 6))
	}
	b.WriteString("\n" + m.theme.Help.Render("Keys live only in memory. Store them somewhere safe."))
	return b.String()
}

func (m model) viewBalance() string {
	var b strings.Builder
	b.WriteString(m.keyInput.View() + "\n\n")

	if m.report == nil {
		b.WriteString(m.theme.Help.Render("Enter a key and press enter."))
		return b.String()
	}

	b.WriteString(m.theme.Label.Render("Account") + m.report.AccountID + "\n")
	if m.report.KeyKind == domain.KeyPrivate {
		b.WriteString(m.theme.Help.Render("(derived from secret key)") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderBalances(m.report.Balances))
	return b.String()
}

func (m model) viewTransfer() string {
	var b strings.Builder
	for i := range m.fields {
		b.WriteString(m.fields[i].View() + "\n")
	}

	op := "[ ] create account (fund a new address)"
	if m.createAccount {
		op = "[x] create account (fund a new address)"
	}
	b.WriteString("\n" + op + "\n")
	b.WriteString(m.theme.Help.Render("Asset: "+domain.NativeAssetSelector) + "\n")

	if r := m.lastResult; r != nil {
		b.WriteString("\n")
		if r.Success {
			b.WriteString(m.theme.Success.Render(r.Message) + "\n")
			b.WriteString(m.theme.Label.Render("Hash") + r.Hash + "\n")
			if r.ReceiptID != "" {
				b.WriteString(m.theme.Label.Render("Receipt") + r.ReceiptID + "\n")
			}
		} else {
			b.WriteString(m.theme.Error.Render(r.Message) + "\n")
		}
	}
	return b.String()
}

func (m model) helpLine() string {
	nav := "ctrl+n/ctrl+p switch tab • ctrl+c quit"
	switch m.active {
	case tabWallet:
		if m.hasWal {
			return "n new • r reveal • c copy public • s copy secret • m copy mnemonic • u use for transfer • q quit • " + nav
		}
		return "n new wallet • q quit • " + nav
	case tabBalance:
		return "enter check balance • " + nav
	case tabTransfer:
		return "tab/↑/↓ move • ctrl+t toggle create account • enter submit • " + nav
	}
	return nav
}

func renderBalances(bs []domain.Balance) string {
	if len(bs) == 0 {
		return "(no balances)\n"
	}

	width := 0
	for _, b := range bs {
		if n := utf8.RuneCountInString(b.Balance); n > width {
			width = n
		}
	}

	var out strings.Builder
	for _, b := range bs {
		fmt.Fprintf(&out, "%*s  %s\n", width, b.Balance, b.DisplayCode)
	}
	return out.String()
}

func wrapWords(s string, perLine int) string {
	words := strings.Fields(s)
	var b strings.Builder
	for i, w := range words {
		fmt.Fprintf(&b, "%2d. %-10s", i+1, w)
		if (i+1)%perLine == 0 || i == len(words)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func networkLabel(name string) string {
	if name == "" {
		return domain.NetworkTestnet
	}
	return name
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "…"
}
