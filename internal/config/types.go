package config

import (
	"path/filepath"
	"strconv"
	"time"
)

// Config is the top-level productpage configuration, corresponding to
// productpage.yml.
type Config struct {
	Port               int      `yaml:"port" koanf:"port"`
	ContentFile        string   `yaml:"content_file" koanf:"content_file"`
	DataDir            string   `yaml:"data_dir" koanf:"data_dir"`
	OutputDir          string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir          string   `yaml:"assets_dir" koanf:"assets_dir"`
	AssetsInclude      []string `yaml:"assets_include" koanf:"assets_include"`
	AutoplayIntervalMS int      `yaml:"autoplay_interval_ms" koanf:"autoplay_interval_ms"`
	ScrollCycleSeconds int      `yaml:"scroll_cycle_seconds" koanf:"scroll_cycle_seconds"`
	AllowAllOrigins    bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	WebhookURL         string   `yaml:"webhook_url" koanf:"webhook_url"`
	AdminToken         string   `yaml:"admin_token" koanf:"admin_token"`
	LogLevel           string   `yaml:"log_level" koanf:"log_level"`
	Watch              bool     `yaml:"watch" koanf:"watch"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// AutoplayInterval is the carousel autoplay period.
func (c *Config) AutoplayInterval() time.Duration {
	return time.Duration(c.AutoplayIntervalMS) * time.Millisecond
}

// ScrollCycle is how long the tech-tile strip takes to cross once.
func (c *Config) ScrollCycle() time.Duration {
	return time.Duration(c.ScrollCycleSeconds) * time.Second
}

// DBPath is the SQLite file holding contact submissions.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "leads.db")
}
