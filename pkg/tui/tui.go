// Package tui hosts the Bubble Tea program for browsing daily readings.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/timeutil"
)

type mode int

const (
	modeNormal mode = iota
	modeGoto
)

// Model drives the daily-reading browser.
type Model struct {
	ctx context.Context
	svc *app.Service

	date    time.Time
	reading daily.Result
	read    bool

	mode   mode
	input  textinput.Model
	status string

	termWidth  int
	termHeight int

	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	refStyle     lipgloss.Style
	readStyle    lipgloss.Style
	footStyle    lipgloss.Style
}

type markedMsg struct {
	unlocked []string
	err      error
}

// New constructs the model anchored on today.
func New(ctx context.Context, svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "2006-01-02"
	ti.CharLimit = 10

	m := &Model{
		ctx:          ctx,
		svc:          svc,
		date:         time.Now(),
		input:        ti,
		titleStyle:   lipgloss.NewStyle().Bold(true).Underline(true),
		sectionStyle: lipgloss.NewStyle().Bold(true),
		refStyle:     lipgloss.NewStyle().Faint(true).Italic(true),
		readStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		footStyle:    lipgloss.NewStyle().Faint(true),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) refresh() {
	m.reading = m.svc.Reading(m.date)
	m.read = m.svc.IsRead(m.date)
}

func (m *Model) markCmd() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		_, unlocked, err := m.svc.MarkRead(m.ctx, date)
		msg := markedMsg{err: err}
		for _, a := range unlocked {
			msg.unlocked = append(msg.unlocked, a.Title)
		}
		return msg
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case markedMsg:
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error()
			return m, nil
		}
		m.refresh()
		if len(msg.unlocked) > 0 {
			m.status = "unlocked: " + strings.Join(msg.unlocked, ", ")
		} else {
			m.status = "marked read"
		}
	case tea.KeyPressMsg:
		if m.mode == modeGoto {
			return m, m.handleGotoKey(msg)
		}
		return m, m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "left", "h":
		m.date = m.date.AddDate(0, 0, -1)
		m.status = ""
		m.refresh()
	case "right", "l":
		m.date = m.date.AddDate(0, 0, 1)
		m.status = ""
		m.refresh()
	case "t":
		m.date = time.Now()
		m.status = ""
		m.refresh()
	case "m":
		return m.markCmd()
	case "g":
		m.mode = modeGoto
		m.input.SetValue("")
		return m.input.Focus()
	}
	return nil
}

func (m *Model) handleGotoKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		parsed, err := timeutil.ParseDate(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.date = parsed
			m.status = ""
			m.refresh()
		}
		m.mode = modeNormal
		m.input.Blur()
		return nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *Model) View() string {
	width := m.termWidth
	if width <= 0 || width > 80 {
		width = 80
	}

	var b strings.Builder

	heading := "Daily reading " + m.reading.Date
	if m.read {
		heading += " " + m.readStyle.Render("✓ read")
	}
	b.WriteString(m.titleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.sectionStyle.Render("Verse of the day"))
	b.WriteString("\n")
	m.writeVerseText(&b, m.reading.VerseOfDay.Text, m.reading.VerseOfDay.Reference(), width)

	if len(m.reading.DatePattern) > 0 {
		b.WriteString(m.sectionStyle.Render("Date pattern"))
		b.WriteString("\n")
		for _, v := range m.reading.DatePattern {
			m.writeVerseText(&b, v.Text, v.Reference(), width)
		}
	}

	if len(m.reading.Psalms) > 0 {
		b.WriteString(m.sectionStyle.Render("Psalms"))
		b.WriteString("\n")
		for _, ps := range m.reading.Psalms {
			b.WriteString(ps.Title)
			b.WriteString("\n")
			var text strings.Builder
			for i, v := range ps.Verses {
				if i > 0 {
					text.WriteString(" ")
				}
				fmt.Fprintf(&text, "%d. %s", v.Verse, v.Text)
			}
			b.WriteString(wordwrap.String(text.String(), width))
			b.WriteString("\n\n")
		}
	}

	if len(m.reading.Proverbs) > 0 {
		b.WriteString(m.sectionStyle.Render("Proverbs"))
		b.WriteString("\n")
		for _, p := range m.reading.Proverbs {
			m.writeVerseText(&b, p.Text, p.Reference(), width)
		}
	}

	if m.mode == modeGoto {
		b.WriteString("go to date: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(m.footStyle.Render("←/→ day · t today · m mark read · g go to date · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeVerseText(b *strings.Builder, text, ref string, width int) {
	if text == "" {
		b.WriteString(m.refStyle.Render(" none"))
		b.WriteString("\n\n")
		return
	}
	b.WriteString(wordwrap.String(text, width))
	b.WriteString("\n")
	b.WriteString(m.refStyle.Render("  " + ref))
	b.WriteString("\n\n")
}

// Run launches the interactive reading browser.
func Run(ctx context.Context, svc *app.Service) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
