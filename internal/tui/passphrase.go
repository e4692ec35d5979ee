// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const passphraseCharLimit = 256

// PassphraseModel is the Bubble Tea model of the passphrase prompt. It shows
// one masked input when unlocking and a second confirmation input when a new
// vault is created. The model only collects text; checking the passphrase
// against the vault is left to the caller.
type PassphraseModel struct {
	title string

	inputs    []textinput.Model
	focus     int
	errMsg    string
	submitted bool
	cancelled bool
}

// NewPassphraseModel creates a [PassphraseModel]. With confirm set the user
// has to type the passphrase twice.
func NewPassphraseModel(title string, confirm bool) *PassphraseModel {
	inputs := []textinput.Model{newPassphraseInput("passphrase")}
	if confirm {
		inputs = append(inputs, newPassphraseInput("repeat passphrase"))
	}
	inputs[0].Focus()

	return &PassphraseModel{title: title, inputs: inputs}
}

func newPassphraseInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = passphraseCharLimit
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *PassphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c     cancel the prompt.
//   - tab, shift+tab  move between the inputs.
//   - enter           moves to the confirmation input, or submits.
//
// All other messages are forwarded to the focused input.
func (m *PassphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PassphraseModel) submit() (tea.Model, tea.Cmd) {
	pass := m.inputs[0].Value()
	if pass == "" {
		m.errMsg = errPassphraseRequired.Error()
		m.setFocus(0)
		return m, nil
	}

	if len(m.inputs) > 1 {
		if m.focus == 0 && m.inputs[1].Value() == "" {
			m.errMsg = ""
			m.setFocus(1)
			return m, nil
		}
		if m.inputs[1].Value() != pass {
			m.errMsg = errPassphraseMismatch.Error()
			m.inputs[1].Reset()
			m.setFocus(1)
			return m, nil
		}
	}

	m.errMsg = ""
	m.submitted = true
	return m, tea.Quit
}

// View implements [tea.Model]. The prompt clears itself once it is done so
// the passphrase length does not stay on screen.
func (m *PassphraseModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("Passphrase  │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	if len(m.inputs) > 1 {
		b.WriteString("Repeat      │ ")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: cancel │ enter: confirm"
	if len(m.inputs) > 1 {
		hotKeys = "esc: cancel │ tab: next field │ enter: confirm"
	}

	return appStyle.Render(renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys))
}

// Passphrase returns the entered passphrase once the prompt was submitted.
func (m *PassphraseModel) Passphrase() (string, bool) {
	if !m.submitted {
		return "", false
	}
	return m.inputs[0].Value(), true
}

// Cancelled reports whether the user left the prompt without submitting.
func (m *PassphraseModel) Cancelled() bool {
	return m.cancelled
}

func (m *PassphraseModel) setFocus(i int) {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (i%n + n) % n
	m.inputs[m.focus].Focus()
}
