// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the note client.
type TUI struct {
	client    NoteClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client NoteClient, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Run shows the editor and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newNoteModel(ctx, t.client, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped by signal")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
