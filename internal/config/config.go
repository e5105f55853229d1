package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read once at process start and passed by reference into the
// services that need it; business logic never reads ambient environment
// state directly.
type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Saathi"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	// AI credentials are optional. With no API key the insight service
	// runs in permanent fallback mode for the session; nothing else is
	// affected.
	AI struct {
		APIKey  string        `envconfig:"AI_API_KEY"`
		BaseURL string        `envconfig:"AI_BASE_URL"`
		Model   string        `envconfig:"AI_MODEL" default:"gpt-4o-mini"`
		Timeout time.Duration `envconfig:"AI_TIMEOUT" default:"20s"`
	}

	Analytics struct {
		TopProducts int `envconfig:"TOP_PRODUCTS" default:"5"`
	}

	Ingest struct {
		// Cents applied per row when a source has no unit_price column.
		DefaultUnitPrice int64 `envconfig:"DEFAULT_UNIT_PRICE_CENTS" default:"0"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
