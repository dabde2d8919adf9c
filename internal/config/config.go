package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name    string `envconfig:"APP_NAME" default:"Finarch"`
		Port    int    `envconfig:"PORT" default:"8080"`
		DataDir string `envconfig:"DATA_DIR"`
	}

	AI struct {
		APIKey  string `envconfig:"AI_API_KEY"`
		BaseURL string `envconfig:"AI_BASE_URL"`
		Model   string `envconfig:"AI_MODEL" default:"gpt-4o-mini"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

// DatabasePath resolves the sqlite file location, defaulting to a dotdir in
// the user's home.
func (c *Config) DatabasePath() (string, error) {
	dir := c.App.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}

		dir = filepath.Join(home, ".finarch")
	}

	return filepath.Join(dir, "finarch.db"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
