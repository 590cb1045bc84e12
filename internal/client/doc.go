// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI over a note client until the user quits or the
// process is signalled, then releases the note client.
package client
