// Package tui provides the interactive offset prompt.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spiffcs/punchcard/internal/biduration"
	"golang.org/x/term"
)

// PromptOffset asks for an offset on the terminal. It returns nil when the
// user submits an empty line and ErrCancelled when the prompt is aborted.
func PromptOffset(title string) (*biduration.BiDuration, error) {
	// Don't use alt screen - render inline
	p := tea.NewProgram(newPromptModel(title))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.cancelled {
		return nil, ErrCancelled
	}
	return m.value, nil
}

// ShouldPrompt returns true if an interactive prompt can be shown.
func ShouldPrompt() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	// Check for CI environment variables
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}

	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
