// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body is not a JSON note
	// document.
	ErrInvalidJSON = errors.New("request body is not valid json")

	// ErrBodyTooLarge is returned when a request body exceeds the size the
	// handler is willing to read.
	ErrBodyTooLarge = errors.New("request body is too large")
)
