// Package tui is the interactive result browser opened by --browse.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LowByteFox/novagrep/internal/usecase/report"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

const maxItemWidth = 120

type hitItem struct {
	hit Hit
}

func (i hitItem) Title() string {
	return clampString(fmt.Sprintf("%s:%d: %s", i.hit.Source, i.hit.LineNumber, i.hit.Text), maxItemWidth)
}
func (i hitItem) Description() string { return i.hit.Source }
func (i hitItem) FilterValue() string { return i.hit.Source + ":" + i.hit.Text }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	active Hit
	detail string
	total  int

	// notice is shown above the list after a recovered failure.
	notice string
}

// Run opens the browser over hits and blocks until the user quits.
func Run(deps Deps, hits []Hit) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if deps.InputTTY {
		opts = append(opts, tea.WithInputTTY())
	}
	if deps.Output != nil {
		opts = append(opts, tea.WithOutput(deps.Output))
	}

	p := tea.NewProgram(wrapSafe(newModel(deps, hits), deps.Logger), opts...)
	_, err := p.Run()
	return err
}

func newModel(deps Deps, hits []Hit) model {
	items := make([]list.Item, 0, len(hits))
	for _, h := range hits {
		items = append(items, hitItem{hit: h})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "novagrep"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenList,
		list:  l,
		total: len(hits),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while the user is typing.
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenList {
				it, ok := m.list.SelectedItem().(hitItem)
				if !ok {
					return m, nil
				}
				m.active = it.hit
				m.detail = report.Highlight(m.deps.Config, it.hit.Text, m.matchStyle)
				m.scr = screenDetail
				m.notice = ""
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				m.active = Hit{}
				m.detail = ""
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) matchStyle(s string) string {
	return m.theme.Match.Render(s)
}

// recovered returns m back on the list screen with the cursor untouched,
// so the hit that was selected stays selected.
func (m model) recovered(notice string) model {
	m.scr = screenList
	m.active = Hit{}
	m.detail = ""
	m.notice = notice
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("novagrep") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d selected lines", m.total)) + "\n"

	switch m.scr {
	case screenList:
		if m.total == 0 {
			return wrap.Render(header + "\n" + m.theme.Card.Render("No lines selected.") + "\n" +
				m.theme.Help.Render("q quit"))
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / filter • q quit")
		if m.notice != "" {
			header += m.theme.Notice.Render(m.notice) + "\n"
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.list.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			m.theme.Title.Render(fmt.Sprintf("%s:%d", m.active.Source, m.active.LineNumber)) + "\n\n" +
				renderHitDetails(m.active, m.detail) + "\n" +
				m.theme.Help.Render("esc/b back • q quit"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
