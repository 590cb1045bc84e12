package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/models"
	"github.com/go-resty/resty/v2"
)

// defaultRequestTimeout bounds requests when the configuration leaves the
// timeout unset.
const defaultRequestTimeout = 10 * time.Second

// NoteAdapter talks to the note endpoint over HTTP/JSON using resty.
type NoteAdapter struct {
	client   *resty.Client
	endpoint string

	logger *logger.Logger
}

// NewHTTPNoteAdapter constructs a [NoteAdapter] for adapterCfg.NoteURL with
// the configured request timeout.
//
// An empty URL is accepted: the adapter is still usable as a value, but
// every request fails with [ErrEmptyEndpoint]. A non-empty URL must be an
// absolute http or https URL, otherwise [ErrInvalidEndpoint] is returned.
func NewHTTPNoteAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (*NoteAdapter, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.NoteURL)
	if err != nil {
		return nil, err
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	client := resty.New().SetTimeout(timeout)

	return &NoteAdapter{client: client, endpoint: endpoint, logger: logger}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must be an absolute http(s) url", ErrInvalidEndpoint, raw)
	}

	return u.String(), nil
}

// Endpoint returns the configured note URL, or an empty string when unset.
func (a *NoteAdapter) Endpoint() string {
	return a.endpoint
}

// Fetch GETs the note. The body alone decides the outcome: it must be a JSON
// object with a non-null "text" string property. The status code is
// not inspected.
func (a *NoteAdapter) Fetch(ctx context.Context) (string, error) {
	if a.endpoint == "" {
		return "", ErrEmptyEndpoint
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(a.endpoint)
	if err != nil {
		return "", fmt.Errorf("fetch note request: %w", err)
	}

	a.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("note fetched")

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if !note.HasText() {
		return "", ErrMissingText
	}

	return note.Value(), nil
}

// Store PUTs text as {"text": text}. Only transport failures are errors;
// a completed exchange counts as success whatever its status code, which is
// logged when it is not 2xx.
func (a *NoteAdapter) Store(ctx context.Context, text string) error {
	if a.endpoint == "" {
		return ErrEmptyEndpoint
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewNote(text)).
		Put(a.endpoint)
	if err != nil {
		return fmt.Errorf("store note request: %w", err)
	}

	if !resp.IsSuccess() {
		a.logger.Warn().
			Int("status", resp.StatusCode()).
			Str("body", strings.TrimSpace(resp.String())).
			Msg("note endpoint answered the save with a non-2xx status")
		return nil
	}

	a.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("note stored")
	return nil
}
