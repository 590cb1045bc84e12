// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, endpoint string) *NoteAdapter {
	t.Helper()
	a, err := NewHTTPNoteAdapter(config.ClientAdapter{NoteURL: endpoint, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPNoteAdapter_Endpoints(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty is allowed", raw: "", want: ""},
		{name: "blank is empty", raw: "   ", want: ""},
		{name: "http", raw: "http://localhost:8080/api/note", want: "http://localhost:8080/api/note"},
		{name: "https with spaces", raw: " https://notes.example.com/note ", want: "https://notes.example.com/note"},
		{name: "relative", raw: "/api/note", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://notes.example.com/note", wantErr: true},
		{name: "unparsable", raw: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPNoteAdapter(config.ClientAdapter{NoteURL: tt.raw}, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEndpoint)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Endpoint())
		})
	}
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/note", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"hello"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/note")
	got, err := a.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestFetch_EmptyTextIsValid(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"text":""}`)

	got, err := newTestAdapter(t, srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetch_BodyErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "missing text", body: `{}`, wantErr: ErrMissingText},
		{name: "null text", body: `{"text":null}`, wantErr: ErrMissingText},
		{name: "json null", body: `null`, wantErr: ErrMissingText},
		{name: "not json", body: `<html>oops</html>`, wantErr: ErrInvalidResponse},
		{name: "array", body: `[]`, wantErr: ErrInvalidResponse},
		{name: "text not a string", body: `{"text":42}`, wantErr: ErrInvalidResponse},
		{name: "empty body", body: ``, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, tt.body)

			_, err := newTestAdapter(t, srv.URL).Fetch(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestFetch_StatusNotInspected verifies that a well-formed body is accepted
// even when the endpoint answers with a non-2xx status.
func TestFetch_StatusNotInspected(t *testing.T) {
	srv := jsonServer(t, http.StatusNotFound, `{"text":"still here"}`)

	got, err := newTestAdapter(t, srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "still here", got)
}

func TestFetch_TransportError(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"text":"x"}`)
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch note request")
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"text":"x"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Fetch(ctx)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}

func TestFetch_EmptyEndpoint(t *testing.T) {
	_, err := newTestAdapter(t, "").Fetch(context.Background())
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
}

// ── Store ───────────────────────────────────────────────────────────────────

func TestStore_SendsJSONBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"text":"draft"}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Store(context.Background(), "draft")

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_NonSuccessStatusIsNotAnError(t *testing.T) {
	srv := jsonServer(t, http.StatusInternalServerError, `internal error`)

	err := newTestAdapter(t, srv.URL).Store(context.Background(), "draft")

	assert.NoError(t, err)
}

func TestStore_TransportError(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, ``)
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	err := a.Store(context.Background(), "draft")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store note request")
}

func TestStore_EmptyEndpoint(t *testing.T) {
	err := newTestAdapter(t, "").Store(context.Background(), "draft")
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
}
