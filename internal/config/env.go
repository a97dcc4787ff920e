// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when neither -env-file nor ENV_FILE is set.
const defaultEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// lookupEnvFile picks the .env path: the flag value, then ENV_FILE, then
// [defaultEnvFile].
func lookupEnvFile(flags *StructuredConfig) string {
	if flags != nil && flags.EnvFile != "" {
		return flags.EnvFile
	}
	if path, ok := os.LookupEnv("ENV_FILE"); ok && path != "" {
		return path
	}
	return defaultEnvFile
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading env file %q: %w", path, err)
}
