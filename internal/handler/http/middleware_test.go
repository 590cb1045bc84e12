// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "client trace id is reused", header: "my-trace-id", wantReused: true},
		{name: "missing trace id is generated"},
		{name: "blank trace id is generated", header: "   "},
		{name: "oversized trace id is replaced", header: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/note", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "expected a generated uuid, got %q", got)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		status    int
		body      string
		wantParts []string
	}{
		{
			name:      "GET 200 with body",
			method:    http.MethodGet,
			status:    http.StatusOK,
			body:      `{"text":""}`,
			wantParts: []string{`"method":"GET"`, `"uri":"/api/note"`, `"status":200`, `"size":11`, `"level":"info"`},
		},
		{
			name:      "PUT 204",
			method:    http.MethodPut,
			status:    http.StatusNoContent,
			wantParts: []string{`"method":"PUT"`, `"status":204`, `"size":0`},
		},
		{
			name:      "implicit 200",
			method:    http.MethodGet,
			wantParts: []string{`"status":200`},
		},
		{
			name:      "server error logged at error level",
			method:    http.MethodGet,
			status:    http.StatusInternalServerError,
			wantParts: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			// withTraceID puts the request logger into the context
			handler := h.withTraceID(h.withLogging(next))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, "/api/note", nil))

			for _, part := range tt.wantParts {
				assert.Contains(t, buf.String(), part)
			}
			assert.Contains(t, buf.String(), `"duration":`)
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, rr, w.Unwrap())
}

// ---- withRateLimit ----

func TestWithRateLimit(t *testing.T) {
	cfg := config.ServerConfig{Server: config.Server{RateLimit: 1, RateBurst: 2}}
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := h.withRateLimit(next)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		last = httptest.NewRecorder()
		limited.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/note", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1", last.Header().Get("Retry-After"))
}

func TestWithRateLimit_Disabled(t *testing.T) {
	h := NewHandler(&service.Services{}, config.ServerConfig{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := h.withRateLimit(next)

	for range 50 {
		rr := httptest.NewRecorder()
		limited.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/note", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}
