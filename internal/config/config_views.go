// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the destination of the client log.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// NoteURL is the note endpoint. It may be empty: the client then reports
	// a configuration error in its status line instead of failing to start.
	NoteURL string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStatus holds the status line settings of the client.
type ClientStatus struct {
	// ClearDelay is how long transient status messages stay visible.
	ClearDelay time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Status  ClientStatus
}

// ServerApp holds server-side application settings.
type ServerApp struct {
	// MaxNoteSize is the largest accepted note text, in bytes.
	MaxNoteSize int64
}

// ServerConfig is the server configuration assembled from [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage Storage
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := getStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			NoteURL:        cfg.Adapter.NoteURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Status: ClientStatus{
			ClearDelay: cfg.Status.ClearDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := getStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     ServerApp{MaxNoteSize: cfg.App.MaxNoteSize},
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
