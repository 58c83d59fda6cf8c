// Package tui is the terminal front end of a wizard run. The Model holds the
// only mutable reference to the run; every key press that submits a section
// replaces it with the wizard returned by Advance or Retreat.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

// ErrAborted is returned by Run when the user abandons the run.
var ErrAborted = errors.New("capture abandoned")

type Styles struct {
	Banner  lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Help    lipgloss.Style
	Warning lipgloss.Style
}

func defaultStyles(color string) Styles {
	label := lipgloss.NewStyle().Width(68)
	return Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(color)).Padding(0, 1),
		Label:   label,
		Focused: label.Foreground(lipgloss.Color(color)).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true),
	}
}

type Option func(*Model)

// WithColor sets the accent color of the banner and the focused field.
func WithColor(color string) Option {
	return func(m *Model) {
		m.Styles = defaultStyles(color)
	}
}

type Model struct {
	Styles Styles

	wizard  polifin.Wizard
	fields  []polifin.Field
	inputs  []textinput.Model
	focus   int
	confirm bool
	aborted bool
}

func New(w polifin.Wizard, opts ...Option) Model {
	m := Model{
		Styles: defaultStyles("#7A003C"),
		wizard: w,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.loadSection()
	return m
}

// Wizard returns the run as it stands.
func (m Model) Wizard() polifin.Wizard { return m.wizard }

// Aborted reports whether the user abandoned the run.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	if m.confirm {
		switch strings.ToLower(key.String()) {
		case "s", "y":
			m.aborted = true
			return m, tea.Quit
		case "n", "esc":
			m.confirm = false
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		if m.dirty() {
			m.confirm = true
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit

	case "tab", "down":
		return m, m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)

	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		return m.advance()

	case "pgdown":
		return m.advance()

	case "pgup":
		m.wizard = m.wizard.Retreat(m.entries())
		m.loadSection()
		return m, textinput.Blink
	}

	return m.updateInput(msg)
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.wizard = m.wizard.Advance(m.entries())
	if m.wizard.IsReportReady() {
		return m, tea.Quit
	}
	m.loadSection()
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// loadSection replaces the inputs with the fields of the current section,
// pre-filled from the store.
func (m *Model) loadSection() {
	entries := m.wizard.CurrentSectionFields()
	m.fields = make([]polifin.Field, len(entries))
	m.inputs = make([]textinput.Model, len(entries))
	for i, e := range entries {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "0.00"
		in.CharLimit = 24
		in.Width = 20
		in.SetValue(e.Value)
		m.fields[i] = e.Field
		m.inputs[i] = in
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m Model) entries() map[string]string {
	entries := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		entries[f.Label] = m.inputs[i].Value()
	}
	return entries
}

// dirty reports whether leaving now would lose captured or typed values.
func (m Model) dirty() bool {
	if m.wizard.Dirty() {
		return true
	}
	for _, in := range m.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	sec, ok := m.wizard.Section()
	if !ok {
		return ""
	}
	idx, total := m.wizard.Position()

	var b strings.Builder
	b.WriteString(m.Styles.Banner.Render(fmt.Sprintf("%s  %d/%d  %s", m.wizard.Kind().Title(), idx+1, total, sec.Title)))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		label := m.Styles.Label
		if i == m.focus {
			label = m.Styles.Focused
		}
		b.WriteString(label.Render(f.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.confirm {
		b.WriteString(m.Styles.Warning.Render("Hay valores capturados. ¿Abandonar la captura? (s/n)"))
	} else {
		b.WriteString(m.Styles.Help.Render("tab/↑↓ mover  enter siguiente  pgup sección anterior  pgdown sección siguiente  esc salir"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run drives w in the terminal until the report is ready or the user
// abandons the run.
func Run(w polifin.Wizard, opts ...Option) (polifin.Wizard, error) {
	final, err := tea.NewProgram(New(w, opts...)).Run()
	if err != nil {
		return w, err
	}
	m := final.(Model)
	if m.aborted {
		return m.wizard, ErrAborted
	}
	return m.wizard, nil
}
