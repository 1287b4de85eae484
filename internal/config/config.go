package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the optional YAML config file read by Load.
const DefaultPath = "config.yaml"

// Config holds all configuration for the portfolio site.
// Values come from config.yaml when present; environment variables (also
// loaded from .env) override them.
type Config struct {
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"development"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Contact   ContactConfig   `yaml:"contact"`
	Recommend RecommendConfig `yaml:"recommend"`
}

// SiteConfig holds values rendered into every page.
type SiteConfig struct {
	Title string `yaml:"title" env:"SITE_TITLE" env-default:"Zach Kordas-Potter | Freelance Software Engineer"`
	Owner string `yaml:"owner" env:"SITE_OWNER" env-default:"Zach Kordas-Potter"`
	Email string `yaml:"email" env:"SITE_EMAIL" env-default:"hello@example.com"`
}

// ContentConfig selects where catalogs are loaded from.
type ContentConfig struct {
	// Dir is an on-disk content tree. Empty means the embedded seed data.
	Dir string `yaml:"dir" env:"CONTENT_DIR" env-default:""`
	// Watch reloads Dir when files change. Ignored without Dir.
	Watch bool `yaml:"watch" env:"CONTENT_WATCH" env-default:"false"`
}

// ContactConfig selects the contact form backend.
type ContactConfig struct {
	// Backend is "simulated" or "sqlite".
	Backend string        `yaml:"backend" env:"CONTACT_BACKEND" env-default:"simulated"`
	Delay   time.Duration `yaml:"delay" env:"CONTACT_DELAY" env-default:"1500ms"`
	DBPath  string        `yaml:"db_path" env:"CONTACT_DB_PATH" env-default:"portfolio.db"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// Seed fixes the random selection when non-zero.
	Seed uint64 `yaml:"seed" env:"RECOMMEND_SEED" env-default:"0"`
}

// IsProduction reports whether the site runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads path (if it exists) with environment overrides and validates
// the result. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.Contact.Backend {
	case "simulated", "sqlite":
	default:
		return fmt.Errorf("invalid contact backend %q: must be simulated or sqlite", c.Contact.Backend)
	}
	if c.Contact.Delay < 0 {
		return fmt.Errorf("contact delay must not be negative, got %s", c.Contact.Delay)
	}
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	return nil
}
