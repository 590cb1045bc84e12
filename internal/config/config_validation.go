// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the client view. An empty note URL is valid here; the note
// client reports it as a configuration error in its status line.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Status.ClearDelay <= 0 {
		return ErrInvalidStatusConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1) {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxNoteSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
