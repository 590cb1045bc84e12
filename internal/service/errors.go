package service

import "errors"

var (
	ErrValidationNoText = errors.New("note has no text property")
	ErrNoteTooLarge     = errors.New("note exceeds the maximum size")
)
