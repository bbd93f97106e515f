// Package tui is the interactive surface over the validator: an input
// line with live feedback, a result log and a sample catalog cycle.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exprlang/exprcheck"
	"github.com/exprlang/exprcheck/catalog"
)

// entry is one validated expression in the session log
type entry struct {
	expression string
	result     exprcheck.Result
}

// Model is the bubbletea model for the validator session
type Model struct {
	input     textinput.Model
	samples   []catalog.Sample
	nextIndex int
	log       []entry
	width     int
}

// NewModel creates a new Model. The samples populate the input when
// the user cycles examples; pass catalog.Builtin() for the defaults.
func NewModel(samples []catalog.Sample) Model {
	input := textinput.New()
	input.Placeholder = "Enter arithmetic expression..."
	input.Prompt = "> "
	input.Focus()

	return Model{
		input:   input,
		samples: samples,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Validation runs synchronously: it is
// linear in the input length, so every keystroke can afford it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			expr := m.input.Value()
			if strings.TrimSpace(expr) == "" {
				return m, nil
			}

			m.log = append(m.log, entry{
				expression: expr,
				result:     exprcheck.Validate(expr),
			})
			m.input.Reset()

			return m, nil

		case "ctrl+e":
			if len(m.samples) > 0 {
				m.input.SetValue(m.samples[m.nextIndex].Expression)
				m.input.CursorEnd()
				m.nextIndex = (m.nextIndex + 1) % len(m.samples)
			}

			return m, nil

		case "ctrl+l":
			m.log = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("exprcheck — arithmetic expression validator"))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")

	for _, e := range m.log {
		b.WriteString(m.logView(e))
	}

	b.WriteString(helpStyle.Render("enter: validate  ctrl+e: example  ctrl+l: clear  esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// statusView renders the live verdict for the text currently in the
// input line.
func (m Model) statusView() string {
	expr := m.input.Value()
	if strings.TrimSpace(expr) == "" {
		return statusMutedStyle.Render("Ready — enter a non-empty expression")
	}

	result := exprcheck.Validate(expr)
	if result.Valid {
		return statusValidStyle.Render("Valid expression")
	}

	return statusErrorStyle.Render(fmt.Sprintf("Invalid at %d: %s", result.Position, result.Message))
}

// logView renders one logged outcome, with a caret line under invalid
// expressions.
func (m Model) logView(e entry) string {
	if e.result.Valid {
		return logOKStyle.Render("[OK]    "+e.expression) + "\n"
	}

	line := logErrorStyle.Render("[ERROR] "+e.expression) + "\n"
	caret := strings.Repeat(" ", len("[ERROR] ")+e.result.Position)

	return line + caretStyle.Render(caret+"^") + " " + e.result.Message + "\n"
}

// Run starts the interactive session and blocks until the user quits
func Run(samples []catalog.Sample) error {
	program := tea.NewProgram(NewModel(samples), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
