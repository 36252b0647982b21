package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/lumen/internal/domain"
)

type tab int

const (
	tabWallet tab = iota
	tabBalance
	tabTransfer
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabWallet:
		return "Wallet"
	case tabBalance:
		return "Balance"
	case tabTransfer:
		return "Transfer"
	default:
		return "?"
	}
}

// Transfer form fields, in focus order.
const (
	fieldSecret = iota
	fieldRecipient
	fieldAmount
	fieldMemo
	fieldCount
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	active tab
	busy   bool
	spin   spinner.Model

	toast    string
	toastErr bool
	toastSeq int

	// Wallet tab. wallet is the current keypair; nothing else holds it.
	wallet   domain.Wallet
	hasWal   bool
	revealed bool

	// Balance tab.
	keyInput textinput.Model
	report   *domain.BalanceReport

	// Transfer tab.
	fields        [fieldCount]textinput.Model
	focus         int
	createAccount bool
	lastResult    *domain.TransactionResult
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	key := textinput.New()
	key.Placeholder = "G... public key or S... secret key"
	key.Prompt = "Key: "
	key.CharLimit = domain.KeyLength
	key.Width = domain.KeyLength + 2
	key.EchoCharacter = '•'

	var fields [fieldCount]textinput.Model
	for i := range fields {
		in := textinput.New()
		in.Width = domain.KeyLength + 2
		switch i {
		case fieldSecret:
			in.Prompt = "Secret:    "
			in.Placeholder = "S..."
			in.CharLimit = domain.KeyLength
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		case fieldRecipient:
			in.Prompt = "Recipient: "
			in.Placeholder = "G..."
			in.CharLimit = domain.KeyLength
		case fieldAmount:
			in.Prompt = "Amount:    "
			in.Placeholder = "XLM amount"
			in.CharLimit = 24
		case fieldMemo:
			in.Prompt = "Memo:      "
			in.Placeholder = "optional"
			in.CharLimit = domain.MaxMemoBytes
		}
		fields[i] = in
	}

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		log:      log,
		active:   tabWallet,
		spin:     sp,
		keyInput: key,
		fields:   fields,
		revealed: deps.RevealSecrets,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case walletCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Warn("tui.wallet.failed", "err", msg.err)
			return m.showError(userMessage(msg.err))
		}
		m.wallet = msg.wallet
		m.hasWal = true
		m.revealed = m.deps.RevealSecrets
		m.log.Info("tui.wallet.created", "public_key", msg.wallet.PublicKey)
		return m.showInfo("New wallet created. Nothing is saved: copy your keys now.")

	case balanceLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.report = nil
			return m.showError(userMessage(msg.err))
		}
		r := msg.report
		m.report = &r
		return m, nil

	case txDoneMsg:
		m.busy = false
		res := msg.result
		m.lastResult = &res
		if res.Success {
			m.fields[fieldAmount].SetValue("")
			m.fields[fieldMemo].SetValue("")
			return m.showInfo(res.Message)
		}
		return m.showError(res.Message)

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("tui.clipboard.failed", "what", msg.what, "err", msg.err)
			return m.showError("Could not copy to clipboard")
		}
		return m.showInfo(msg.what + " copied to clipboard")

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+n", "ctrl+right":
		return m.switchTab((m.active + 1) % tabCount)
	case "ctrl+p", "ctrl+left":
		return m.switchTab((m.active + tabCount - 1) % tabCount)
	}

	switch m.active {
	case tabWallet:
		return m.handleWalletKey(msg)
	case tabBalance:
		if msg.String() == "enter" {
			return m.startBalance()
		}
	case tabTransfer:
		switch msg.String() {
		case "enter":
			return m.startTransfer()
		case "tab", "down":
			return m.focusField((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m.focusField((m.focus + fieldCount - 1) % fieldCount)
		case "ctrl+t":
			m.createAccount = !m.createAccount
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m model) handleWalletKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.toast = ""
		return m, tea.Batch(m.spin.Tick, cmdCreateWallet(m.deps.CreateWallet))
	}

	if !m.hasWal {
		return m, nil
	}

	switch msg.String() {
	case "r":
		m.revealed = !m.revealed
	case "c":
		return m, cmdCopy(m.deps.Clipboard, "Public key", m.wallet.PublicKey)
	case "s":
		return m, cmdCopy(m.deps.Clipboard, "Secret key", m.wallet.Secret.Reveal())
	case "m":
		if m.wallet.Mnemonic != "" {
			return m, cmdCopy(m.deps.Clipboard, "Mnemonic", m.wallet.Mnemonic)
		}
	case "u":
		m.fields[fieldSecret].SetValue(m.wallet.Secret.Reveal())
		next, cmd := m.switchTab(tabTransfer)
		nm := next.(model)
		nm, toastCmd := nm.showInfo("Wallet secret loaded into the transfer form")
		return nm, tea.Batch(cmd, toastCmd)
	}
	return m, nil
}

func (m model) startBalance() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	key := strings.TrimSpace(m.keyInput.Value())
	if c := m.deps.Classifier.Classify(key); !c.Valid() {
		m.report = nil
		return m.showError(c.ErrorMessage)
	}

	m.busy = true
	m.toast = ""
	return m, tea.Batch(m.spin.Tick, cmdCheckBalance(m.deps.CheckBalance, key))
}

// keyEchoMode hides secret seeds while leaving public addresses readable.
func keyEchoMode(v string) textinput.EchoMode {
	if strings.HasPrefix(strings.TrimSpace(v), "S") {
		return textinput.EchoPassword
	}
	return textinput.EchoNormal
}

func (m model) startTransfer() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	secret := domain.Secret(strings.TrimSpace(m.fields[fieldSecret].Value()))
	recipient := strings.TrimSpace(m.fields[fieldRecipient].Value())
	amount := strings.TrimSpace(m.fields[fieldAmount].Value())

	if err := m.deps.Validator.Validate(domain.TransferFields{Secret: secret, Recipient: recipient, Amount: amount}); err != nil {
		return m.showError(userMessage(err))
	}
	// The input counts runes; the network counts bytes.
	memo := m.fields[fieldMemo].Value()
	if len(memo) > domain.MaxMemoBytes {
		return m.showError(msgMemoTooLong)
	}

	op := domain.OperationTransfer
	if m.createAccount {
		op = domain.OperationCreateAccount
	}

	m.busy = true
	m.toast = ""
	m.lastResult = nil
	intent := domain.TransactionIntent{
		SourceSecret:  secret,
		DestinationID: recipient,
		Amount:        amount,
		Operation:     op,
		Memo:          memo,
		AssetSelector: domain.NativeAssetSelector,
	}
	return m, tea.Batch(m.spin.Tick, cmdSubmit(m.deps.Submit, intent))
}

func (m model) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.active = t
	m.keyInput.Blur()
	for i := range m.fields {
		m.fields[i].Blur()
	}

	switch t {
	case tabBalance:
		cmd := m.keyInput.Focus()
		return m, cmd
	case tabTransfer:
		return m.focusField(m.focus)
	}
	return m, nil
}

func (m model) focusField(i int) (tea.Model, tea.Cmd) {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.fields {
		if j == i {
			cmd = m.fields[j].Focus()
		} else {
			m.fields[j].Blur()
		}
	}
	return m, cmd
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case tabBalance:
		m.keyInput, cmd = m.keyInput.Update(msg)
		m.keyInput.EchoMode = keyEchoMode(m.keyInput.Value())
	case tabTransfer:
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	}
	return m, cmd
}

func (m model) showError(msg string) (model, tea.Cmd) {
	m.toastSeq++
	m.toast = msg
	m.toastErr = true
	return m, clearToastAfter(m.toastSeq)
}

func (m model) showInfo(msg string) (model, tea.Cmd) {
	m.toastSeq++
	m.toast = msg
	m.toastErr = false
	return m, clearToastAfter(m.toastSeq)
}
