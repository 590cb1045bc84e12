// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport used by the note client to
// read and write the note at its configured endpoint.
//
// A single endpoint URL serves both operations: GET returns the note as
// {"text": "..."} and PUT replaces it with a body of the same shape.
// Failures are reported through the sentinel errors in errors.go so callers
// can match them with [errors.Is].
package adapter
