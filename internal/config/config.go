package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	JWT     JWTConfig     `yaml:"jwt"`
	Catalog CatalogConfig `yaml:"catalog"`
	AI      AIConfig      `yaml:"ai"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// CatalogConfig controls how much mock content each session gets and how
// large the shared song/effect catalogs are.
type CatalogConfig struct {
	FeedVideos    int `yaml:"feed_videos"`
	ShortsVideos  int `yaml:"shorts_videos"`
	Songs         int `yaml:"songs"`
	Effects       int `yaml:"effects"`
	Notifications int `yaml:"notifications"`
}

// AIConfig holds generative-model provider configuration
type AIConfig struct {
	Endpoint       string `yaml:"endpoint"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in catalog sizes matching the client's per-screen
// batch sizes when the file leaves them unset.
func (c *Config) applyDefaults() {
	if c.Catalog.FeedVideos == 0 {
		c.Catalog.FeedVideos = 20
	}
	if c.Catalog.ShortsVideos == 0 {
		c.Catalog.ShortsVideos = 30
	}
	if c.Catalog.Songs == 0 {
		c.Catalog.Songs = 2000
	}
	if c.Catalog.Effects == 0 {
		c.Catalog.Effects = 1000
	}
	if c.Catalog.Notifications == 0 {
		c.Catalog.Notifications = 5
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 30
	}
}
