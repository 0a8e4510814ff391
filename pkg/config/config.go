// Package config loads process configuration into an explicit struct passed
// to the bootstrap; there are no ambient globals. Values come from defaults
// overridden by FM_-prefixed environment variables
// (e.g. FM_DATABASE_HOST, FM_IMAGESEARCH_APIKEY).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/jevonx/farmers-market/pkg/database"
)

const envPrefix = "FM_"

// Config is the root configuration for the catalog server.
type Config struct {
	HTTPPort    string            `koanf:"httpport"`
	LogLevel    string            `koanf:"loglevel"`
	Development bool              `koanf:"development"`
	ViewsGlob   string            `koanf:"viewsglob"`
	StaticDir   string            `koanf:"staticdir"`
	Database    database.Config   `koanf:"database"`
	ImageSearch ImageSearchConfig `koanf:"imagesearch"`
}

// ImageSearchConfig configures the stock photo lookup client.
type ImageSearchConfig struct {
	Endpoint string        `koanf:"endpoint"`
	APIKey   string        `koanf:"apikey"`
	Timeout  time.Duration `koanf:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		HTTPPort:    "8080",
		LogLevel:    "info",
		Development: false,
		ViewsGlob:   "views/*.html",
		StaticDir:   "public",
		Database: database.Config{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "farmersmarket",
			SSLMode:  "disable",
		},
		ImageSearch: ImageSearchConfig{
			Endpoint: "https://api.bing.microsoft.com",
			APIKey:   "",
			Timeout:  3 * time.Second,
		},
	}
}

// Load builds the configuration from defaults and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// FM_DATABASE_HOST -> database.host
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
