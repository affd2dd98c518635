package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the user leaves a prompt with esc or ctrl+c.
var ErrPromptCancelled = errors.New("prompt cancelled")

type textPromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

func defaultTextPromptKeyMap() textPromptKeyMap {
	return textPromptKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// TextPromptModel is the BubbleTea model for a single free-text question.
type TextPromptModel struct {
	question  string
	input     textinput.Model
	keys      textPromptKeyMap
	submitted bool
	cancelled bool
}

// NewTextPromptModel creates a prompt asking question. The placeholder is
// shown while the input is empty.
func NewTextPromptModel(question, placeholder string) TextPromptModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.Focus()

	return TextPromptModel{
		question: question,
		input:    input,
		keys:     defaultTextPromptKeyMap(),
	}
}

// Init implements tea.Model.
func (m TextPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m TextPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m TextPromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.question))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(Styles.Help.Render("enter confirm • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the trimmed answer.
func (m TextPromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Cancelled reports whether the user left the prompt without answering.
func (m TextPromptModel) Cancelled() bool {
	return m.cancelled
}

// RunTextPrompt asks question in the terminal and returns the answer. An
// empty answer is returned as "".
func RunTextPrompt(question, placeholder string) (string, error) {
	finalModel, err := Run(NewTextPromptModel(question, placeholder))
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(TextPromptModel)
	if !ok {
		return "", nil
	}
	if m.Cancelled() {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}
