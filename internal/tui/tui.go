// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal front-end of the vault client: the Bubble
// Tea passphrase and confirmation prompts and the plain views printed by
// the commands.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
)

// TUI runs the interactive prompts. Every prompt is a short-lived
// [tea.Program]; the command output itself is printed by the caller.
type TUI struct {
	opts   []tea.ProgramOption
	logger *logger.Logger
}

// New creates a [TUI]. opts are passed to every program, e.g.
// [tea.WithInput] and [tea.WithOutput] to run on something other than the
// terminal.
func New(log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{opts: opts, logger: log}
}

// Passphrase asks for a passphrase. With confirm set it has to be typed
// twice. Returns [ErrUserQuit] when the prompt is cancelled.
func (t *TUI) Passphrase(ctx context.Context, title string, confirm bool) (string, error) {
	final, err := t.run(ctx, NewPassphraseModel(title, confirm))
	if err != nil {
		return "", err
	}

	m, ok := final.(*PassphraseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	pass, submitted := m.Passphrase()
	if m.Cancelled() || !submitted {
		return "", ErrUserQuit
	}
	return pass, nil
}

// Confirm asks a yes/no question.
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := t.run(ctx, NewConfirmModel(question))
	if err != nil {
		return false, err
	}

	m, ok := final.(*ConfirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return m.Accepted(), nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		t.logger.Debug().Str("func", "TUI.run").Err(err).Msg("prompt aborted")
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
