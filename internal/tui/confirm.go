package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a yes/no question. Anything but "y" counts as no.
type ConfirmModel struct {
	question string
	answered bool
	accepted bool
}

func NewConfirmModel(question string) *ConfirmModel {
	return &ConfirmModel{question: question}
}

func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.accepted = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	content := m.question + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// Accepted reports whether the user answered yes.
func (m *ConfirmModel) Accepted() bool {
	return m.accepted
}
