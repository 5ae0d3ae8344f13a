package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spiffcs/punchcard/internal/biduration"
)

// ErrCancelled is returned when the user aborts the prompt.
var ErrCancelled = errors.New("prompt cancelled")

// promptModel is the Bubble Tea model for entering an offset.
type promptModel struct {
	title     string
	input     textinput.Model
	value     *biduration.BiDuration
	err       error
	done      bool
	cancelled bool
}

func newPromptModel(title string) promptModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 15m ago, in 1h 30m"
	ti.Prompt = "› "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return promptModel{
		title: title,
		input: ti,
	}
}

// Init initializes the model.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.validate()
	return m, cmd
}

// submit accepts the current text. Empty text means no offset.
func (m promptModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.value = nil
		m.done = true
		return m, tea.Quit
	}

	b, err := biduration.Parse(text)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.value = &b
	m.err = nil
	m.done = true
	return m, tea.Quit
}

// validate refreshes the error shown below the input.
func (m *promptModel) validate() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.err = nil
		return
	}
	_, m.err = biduration.Parse(text)
}

// View renders the prompt with a live preview of the parsed offset.
func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")

	text := strings.TrimSpace(m.input.Value())
	switch {
	case text == "":
		s.WriteString(hintStyle.Render("leave empty for no offset"))
	case m.err != nil:
		s.WriteString(errorStyle.Render(m.err.Error()))
	default:
		if b, err := biduration.Parse(text); err == nil {
			s.WriteString(previewStyle.Render(fmt.Sprintf("%s (%s)", b.FriendlyString(), b.FriendlyHoursString())))
		}
	}

	s.WriteString("\n")
	s.WriteString(footerStyle.Render("enter: accept • esc: cancel"))
	s.WriteString("\n")
	return s.String()
}
