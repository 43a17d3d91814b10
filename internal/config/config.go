package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Splitty"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
		// File is only used by the TUI, which owns the terminal.
		File string `envconfig:"LOG_FILE"`
	}

	Avatar struct {
		BaseURL string `envconfig:"AVATAR_BASE_URL" default:"https://i.pravatar.cc/48"`
	}

	Seed struct {
		File     string `envconfig:"SEED_FILE"`
		Defaults bool   `envconfig:"SEED_DEFAULTS" default:"true"`
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
