// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shared-note/internal/logger"
)

// UI is the front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// Closer releases the note client once the UI has exited.
type Closer interface {
	Close()
}

// App ties the note client to its terminal UI.
type App struct {
	note   Closer
	ui     UI
	logger *logger.Logger
}

func NewApp(note Closer, ui UI, logger *logger.Logger) *App {
	return &App{note: note, ui: ui, logger: logger}
}

// Run blocks until the UI exits or the process receives SIGINT, SIGTERM or
// SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.note.Close()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("ui exited with error")
		return err
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
