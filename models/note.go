// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is the JSON document exchanged with the note endpoint:
//
//	{"text": "..."}
//
// Text is a pointer so that a missing or null "text" property can be told
// apart from an empty note.
type Note struct {
	Text *string `json:"text"`
}

// NewNote returns a [Note] holding text.
func NewNote(text string) Note {
	return Note{Text: &text}
}

// HasText reports whether the document carried a "text" property.
func (n Note) HasText() bool {
	return n.Text != nil
}

// Value returns the note text, or an empty string when it is absent.
func (n Note) Value() string {
	if n.Text == nil {
		return ""
	}
	return *n.Text
}

// StoredNote is the server-side record of the note.
type StoredNote struct {
	Text      string
	UpdatedAt time.Time
}
