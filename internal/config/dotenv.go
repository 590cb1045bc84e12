// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// dotEnvPath resolves the .env file location: the -env-file flag, then the
// ENV_FILE variable, then ".env" in the working directory.
func dotEnvPath(args []string) string {
	if cfg, err := parseFlagSet(args, io.Discard); err == nil && cfg.EnvFilePath != "" {
		return cfg.EnvFilePath
	}
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}

	return defaultEnvFile
}

// loadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
