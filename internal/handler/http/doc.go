// Package http implements the HTTP transport layer of the note server.
//
// It exposes route wiring, the note and version handlers, and the middleware
// chain in front of them: panic recovery, request tracing, access logging,
// rate limiting and response compression.
package http
