// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/shared-note/internal/note"
)

// NoteClient is the part of [note.Client] the terminal UI drives.
type NoteClient interface {
	Initialize(ctx context.Context)
	Load(ctx context.Context, clearTextOnError bool)
	Save(ctx context.Context)
	EditText(text string)
	SetMessage(message string, skipAutoClear bool)
	Snapshot() note.State
	Changes() <-chan struct{}
}
