package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shared-note/internal/service"
	"github.com/MKhiriev/shared-note/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrValidationNoText: http.StatusBadRequest,
	service.ErrNoteTooLarge:     http.StatusRequestEntityTooLarge,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
