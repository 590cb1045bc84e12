package note

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/note_adapter_mock.go -package=mock

// Adapter is the transport the [Client] reads and writes the note through.
type Adapter interface {
	// Endpoint returns the configured note URL, or an empty string when the
	// client has not been configured.
	Endpoint() string

	// Fetch retrieves the current note text. It fails on transport errors
	// and on response bodies that do not carry a "text" property.
	Fetch(ctx context.Context) (string, error)

	// Store replaces the note with text. Only transport errors are reported.
	Store(ctx context.Context, text string) error
}
