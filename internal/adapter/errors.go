package adapter

import "errors"

var (
	// ErrEmptyEndpoint is returned by every request when no note endpoint
	// has been configured.
	ErrEmptyEndpoint = errors.New("note endpoint is not configured")

	// ErrInvalidEndpoint is returned by the constructor for an endpoint that
	// is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid note endpoint")

	// ErrInvalidResponse is returned when the response body is not a JSON
	// object.
	ErrInvalidResponse = errors.New("invalid response json")

	// ErrMissingText is returned when the response JSON has no "text"
	// property (or it is null).
	ErrMissingText = errors.New("invalid response json: the [text] property does not exist")
)
