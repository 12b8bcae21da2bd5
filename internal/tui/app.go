package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/pkg/present"
)

const toastDuration = 1200 * time.Millisecond

const (
	fieldArea = iota
	fieldThickness
	fieldCount
)

type toastExpiredMsg struct{ seq int }

// screen is the Renderer the adapter draws into.
type screen struct {
	view    present.View
	visible bool
}

func (s *screen) Render(v present.View) {
	s.view = v
	s.visible = true
}

func (s *screen) Hide() {
	s.view = present.View{}
	s.visible = false
}

type model struct {
	theme Theme
	deps  Deps

	inputs      [fieldCount]textinput.Model
	focus       int
	showHandoff bool

	screen  *screen
	adapter *present.Adapter

	toast    string
	toastSeq int
}

func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = present.SystemClipboard{}
	}

	area := textinput.New()
	area.Placeholder = "square feet"
	area.CharLimit = 16
	area.Focus()

	thickness := textinput.New()
	thickness.Placeholder = "inches"
	thickness.CharLimit = 8

	scr := &screen{}
	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		inputs:  [fieldCount]textinput.Model{area, thickness},
		screen:  scr,
		adapter: present.NewAdapter(deps.Presenter, scr),
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			m = m.focusField((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m = m.focusField((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case "ctrl+t":
			m.showHandoff = !m.showHandoff
			m.recalc()
			return m, nil

		case "ctrl+y":
			return m.copyHandoff()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.recalc()
	}
	return m, cmd
}

func (m model) focusField(i int) model {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// recalc runs on every edit, like a form's input event.
func (m *model) recalc() {
	report := m.adapter.Update(present.Request{
		Area:        m.inputs[fieldArea].Value(),
		Thickness:   m.inputs[fieldThickness].Value(),
		ShowHandoff: m.showHandoff,
	})
	if report.Valid {
		v, _ := m.adapter.Latest()
		m.deps.Logger.Debug("bid.computed", zap.Int64("total_cents", int64(v.Result.Total)))
	}
}

func (m model) copyHandoff() (tea.Model, tea.Cmd) {
	err := m.adapter.CopyHandoff(m.deps.Clipboard)
	switch {
	case errors.Is(err, present.ErrNoHandoff):
		return m, nil
	case err != nil:
		m.deps.Logger.Warn("handoff.copy_failed", zap.Error(err))
		m.toast = "Copy failed: " + err.Error()
	default:
		m.toast = present.CopiedMessage
	}
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m model) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Flatwork Bid"))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("Area") + m.inputs[fieldArea].View() + "\n")
	b.WriteString(t.Label.Render("Thickness") + m.inputs[fieldThickness].View() + "\n")

	handoff := "[ ]"
	if m.showHandoff {
		handoff = "[x]"
	}
	b.WriteString(t.Label.Render("Handoff") + handoff + "\n")

	if m.screen.visible {
		v := m.screen.view
		rows := lipgloss.JoinVertical(lipgloss.Left,
			t.Label.Render("Soil removal")+t.Amount.Render(v.SoilRemoval),
			t.Label.Render("Road base")+t.Amount.Render(v.RoadBase),
			t.Label.Render("Concrete")+t.Amount.Render(v.Concrete),
			t.Label.Render("Total")+t.Total.Render(v.Total),
		)
		b.WriteString("\n" + t.Card.Render(rows) + "\n")
		if v.HasHandoff() {
			b.WriteString("\n" + t.Card.Render(v.Handoff) + "\n")
		}
	}

	if m.toast != "" {
		b.WriteString("\n" + t.Toast.Render(m.toast) + "\n")
	}
	b.WriteString("\n" + t.Help.Render("tab: next field • ctrl+t: handoff • ctrl+y: copy handoff • esc: quit"))
	return b.String()
}
