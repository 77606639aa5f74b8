// Released under an MIT license. See LICENSE.

// Package config loads fl's settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// T holds settings that are not given on the command line.
type T struct {
	Debug        bool   `env:"FL_DEBUG"`
	History      string `env:"FL_HISTORY"`
	HistoryLimit int    `env:"FL_HISTORY_LIMIT" envDefault:"1000"`
	Prompt       string `env:"FL_PROMPT" envDefault:"> "`
}

// Load reads the configuration from environment variables.
func Load() (*T, error) {
	c := &T{}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if c.History == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			c.History = filepath.Join(home, ".fl_history")
		}
	}

	return c, nil
}
