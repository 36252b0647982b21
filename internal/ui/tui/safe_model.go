package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel recovers panics raised while handling a message or rendering,
// so a bug in one action leaves the wallet usable and the terminal intact.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.report("update", r)

		// Whatever action was in flight is gone; unlock the tab and tell the user.
		s.m.busy = false
		s.m, cmd = s.m.showError(msgUnexpected)
		next = s
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("view", r)
			out = msgUnexpected
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any) {
	s.log.Error("tui.panic.recovered",
		"where", where,
		"tab", s.m.active.String(),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
