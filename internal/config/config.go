// Package config loads the demo server configuration from a YAML file,
// applying defaults for anything omitted. The palette section is static
// asset configuration for the served page; it carries no logic.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Listen        string        `yaml:"listen"`
	BaseURL       string        `yaml:"base_url"`
	ActionTimeout time.Duration `yaml:"action_timeout"`
	TemplateDir   string        `yaml:"template_dir"`
	Share         Share         `yaml:"share"`
	Theme         Theme         `yaml:"theme"`
}

// Share configures the result snapshot store behind share links.
type Share struct {
	Backend string        `yaml:"backend"` // "memory" or "redis"
	TTL     time.Duration `yaml:"ttl"`
	Redis   Redis         `yaml:"redis"`
}

// Redis holds connection settings for the redis share backend.
type Redis struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Theme is the brand palette pushed into the served page.
type Theme struct {
	Primary       string `yaml:"primary"`
	PrimaryDark   string `yaml:"primary_dark"`
	Accent        string `yaml:"accent"`
	GradientStart string `yaml:"gradient_start"`
	GradientEnd   string `yaml:"gradient_end"`
	Positive      string `yaml:"positive"`
}

// Default returns the configuration used when no file is supplied. The
// palette is the HODOS brand set (lapis blue / violet / gold).
func Default() Config {
	return Config{
		Listen:        ":7860",
		BaseURL:       "http://localhost:7860",
		ActionTimeout: 30 * time.Second,
		Share: Share{
			Backend: "memory",
			TTL:     24 * time.Hour,
			Redis: Redis{
				Address: "localhost:6379",
			},
		},
		Theme: Theme{
			Primary:       "#10439F",
			PrimaryDark:   "#0E3A8A",
			Accent:        "#FFB700",
			GradientStart: "#10439F",
			GradientEnd:   "#874CCC",
			Positive:      "#4ade80",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside an
// adapter.
func (c Config) Validate() error {
	switch c.Share.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown share backend %q (want memory or redis)", c.Share.Backend)
	}
	if c.ActionTimeout <= 0 {
		return fmt.Errorf("action_timeout must be positive")
	}
	if c.Share.TTL <= 0 {
		return fmt.Errorf("share.ttl must be positive")
	}
	return nil
}
