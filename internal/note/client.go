// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package note

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
)

// ErrEndpointNotConfigured is logged by [Client.Initialize] when the adapter
// has no endpoint.
var ErrEndpointNotConfigured = errors.New("note endpoint is not configured")

// State is a snapshot of the client's observable fields.
type State struct {
	Text    string
	Message string
}

// Client holds the note text and the status message and exposes the
// operations that change them.
//
// All methods are safe for concurrent use. Load and Save block until the
// exchange with the endpoint completes; a UI runs them in the background
// and observes the outcome through [Client.Changes] and [Client.Snapshot].
type Client struct {
	adapter    Adapter
	clearDelay time.Duration
	afterFunc  afterFunc
	logger     *logger.Logger

	mu         sync.Mutex
	text       string
	message    string
	messageGen uint64
	clearTask  stopper
	requestSeq uint64
	closed     bool

	changes chan struct{}
}

// NewClient returns a client reading and writing the note through adapter.
// Both the text and the message start as [MessageInitializing]. A
// non-positive statusCfg.ClearDelay falls back to [DefaultClearDelay].
func NewClient(adapter Adapter, statusCfg config.ClientStatus, logger *logger.Logger) *Client {
	clearDelay := statusCfg.ClearDelay
	if clearDelay <= 0 {
		clearDelay = DefaultClearDelay
	}

	return &Client{
		adapter:    adapter,
		clearDelay: clearDelay,
		afterFunc:  timeAfterFunc,
		logger:     logger,
		text:       MessageInitializing,
		message:    MessageInitializing,
		changes:    make(chan struct{}, 1),
	}
}

// Initialize is run once when the UI is mounted. Without an endpoint it
// empties the text, shows a persistent [MessageError] and performs no
// request; otherwise it loads the note, clearing the text if that fails.
func (c *Client) Initialize(ctx context.Context) {
	endpoint := strings.TrimSpace(c.adapter.Endpoint())
	c.logger.Info().Str("endpoint", endpoint).Msg("initializing note client")

	if endpoint == "" {
		c.mu.Lock()
		c.text = ""
		c.setMessageLocked(MessageError, true)
		c.mu.Unlock()

		c.logger.Error().Err(ErrEndpointNotConfigured).Msg("set ADAPTER_NOTE_URL or pass -u")
		return
	}

	c.Load(ctx, true)
}

// Load fetches the note. While the request is in flight the message is a
// persistent [MessageLoading]. On success the text is replaced and
// [MessageLoaded] is shown; on any failure [MessageLoadFailed] is shown and,
// if clearTextOnError is set, the text is emptied.
//
// The result is dropped if another Load or Save was issued meanwhile.
func (c *Client) Load(ctx context.Context, clearTextOnError bool) {
	seq, _ := c.beginRequest(MessageLoading)
	c.logger.Debug().Uint64("seq", seq).Msg("loading note")

	text, err := c.adapter.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLatestLocked(seq, "load") {
		return
	}

	if err != nil {
		c.logger.Error().Err(err).Uint64("seq", seq).Bool("clear_text", clearTextOnError).Msg("failed to load note")
		if clearTextOnError {
			c.text = ""
		}
		c.setMessageLocked(MessageLoadFailed, false)
		return
	}

	c.logger.Info().Uint64("seq", seq).Int("length", len(text)).Msg("note loaded")
	c.text = text
	c.setMessageLocked(MessageLoaded, false)
}

// Save stores the current text. While the request is in flight the message
// is a persistent [MessageSaving]; afterwards it is [MessageSaved] or
// [MessageSaveFailed]. The text is never modified.
//
// The result is dropped if another Load or Save was issued meanwhile.
func (c *Client) Save(ctx context.Context) {
	seq, text := c.beginRequest(MessageSaving)
	c.logger.Debug().Uint64("seq", seq).Int("length", len(text)).Msg("saving note")

	err := c.adapter.Store(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLatestLocked(seq, "save") {
		return
	}

	if err != nil {
		c.logger.Error().Err(err).Uint64("seq", seq).Msg("failed to save note")
		c.setMessageLocked(MessageSaveFailed, false)
		return
	}

	c.logger.Info().Uint64("seq", seq).Msg("note saved")
	c.setMessageLocked(MessageSaved, false)
}

// EditText replaces the text with the user's input and blanks the message.
func (c *Client) EditText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.setMessageLocked("", true)
}

// SetMessage shows message. Unless skipAutoClear is set, it is blanked after
// the clear delay, provided no newer message replaced it first.
func (c *Client) SetMessage(message string, skipAutoClear bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setMessageLocked(message, skipAutoClear)
}

// Snapshot returns the current text and message.
func (c *Client) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{Text: c.text, Message: c.message}
}

// Text returns the current note text.
func (c *Client) Text() string {
	return c.Snapshot().Text
}

// Message returns the current status message.
func (c *Client) Message() string {
	return c.Snapshot().Message
}

// Changes returns a channel that receives a value after state changes.
// Signals are coalesced, so a receiver should read [Client.Snapshot] rather
// than count them. The channel is closed by [Client.Close].
func (c *Client) Changes() <-chan struct{} {
	return c.changes
}

// Close cancels the pending clear task and closes the [Client.Changes]
// channel. The client keeps its last state; later calls still work but no
// longer schedule clears or signal changes.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.clearTask != nil {
		c.clearTask.Stop()
		c.clearTask = nil
	}
	c.messageGen++
	c.closed = true
	close(c.changes)
}

// beginRequest issues the next request sequence number, shows the persistent
// in-flight message and returns the text as of that moment.
func (c *Client) beginRequest(message string) (uint64, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestSeq++
	c.setMessageLocked(message, true)
	return c.requestSeq, c.text
}

func (c *Client) isLatestLocked(seq uint64, op string) bool {
	if seq == c.requestSeq {
		return true
	}

	c.logger.Debug().
		Str("op", op).
		Uint64("seq", seq).
		Uint64("latest", c.requestSeq).
		Msg("discarding stale response")
	return false
}

func (c *Client) notifyLocked() {
	if c.closed {
		return
	}

	select {
	case c.changes <- struct{}{}:
	default:
	}
}
