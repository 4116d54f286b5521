package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	recoveredNotice = "Could not show that line (see logs)"
	viewFallback    = "Unexpected error (see logs)"
)

// safeModel keeps a panic in the browser from tearing down the terminal.
// A panic during Update sends the browser back to the result list with a
// notice; a panic during View renders a one-line fallback.
type safeModel struct {
	inner tea.Model
	log   *slog.Logger
}

func wrapSafe(inner tea.Model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{inner: inner, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r)
			if m, ok := s.inner.(model); ok {
				s.inner = m.recovered(recoveredNotice)
			}
			tm = s
			cmd = nil
		}
	}()

	next, c := s.inner.Update(msg)
	if sm, ok := next.(safeModel); ok {
		next = sm.inner
	}
	s.inner = next
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = viewFallback
		}
	}()
	return s.inner.View()
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
