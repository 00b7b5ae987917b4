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

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads variables from the .env file named by DOTENV_PATH (or
// ".env" in the working directory). Variables already present in the
// environment are not overwritten. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = DefaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
