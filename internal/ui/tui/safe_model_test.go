package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LowByteFox/novagrep/internal/domain"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestSafeModel_UpdatePanicReturnsToList(t *testing.T) {
	// A nil matcher makes highlighting panic when a hit is opened.
	cfg := &domain.SearchConfig{Matchers: []domain.Matcher{nil}}
	var logs bytes.Buffer
	s := wrapSafe(sized(t, newModel(Deps{Config: cfg}, sampleHits())), bufferLogger(&logs))

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s = next.(safeModel)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command after a recovered panic")
	}
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}

	m := sm.inner.(model)
	if m.scr != screenList {
		t.Fatalf("expected list screen, got %v", m.scr)
	}
	if m.notice != recoveredNotice {
		t.Fatalf("expected recovery notice, got %q", m.notice)
	}
	if m.list.Index() != 1 {
		t.Fatalf("selected hit must be kept, index=%d", m.list.Index())
	}
	if v := sm.View(); !strings.Contains(v, recoveredNotice) {
		t.Fatalf("list view must show the notice:\n%s", v)
	}
	if !strings.Contains(logs.String(), `"where":"tui.update"`) {
		t.Fatalf("expected panic to be logged, got %s", logs.String())
	}
}

type brokenView struct{}

func (brokenView) Init() tea.Cmd                       { return nil }
func (brokenView) Update(tea.Msg) (tea.Model, tea.Cmd) { return brokenView{}, nil }
func (brokenView) View() string                        { panic("render failed") }

func TestSafeModel_ViewPanicFallsBack(t *testing.T) {
	var logs bytes.Buffer
	s := wrapSafe(brokenView{}, bufferLogger(&logs))

	if got := s.View(); got != viewFallback {
		t.Fatalf("expected fallback view, got %q", got)
	}
	if !strings.Contains(logs.String(), `"where":"tui.view"`) || !strings.Contains(logs.String(), "render failed") {
		t.Fatalf("expected panic to be logged, got %s", logs.String())
	}
}

func TestModel_OpenClearsNotice(t *testing.T) {
	m := sized(t, newModel(Deps{}, sampleHits())).recovered(recoveredNotice)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.notice != "" || m.scr != screenDetail {
		t.Fatalf("opening a hit must clear the notice, got %+v", m.notice)
	}
}
