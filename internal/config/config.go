package config

import (
	"fmt"
	"net/url"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Recording RecordingConfig `yaml:"recording"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
	Paths     PathsConfig     `yaml:"paths"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RecordingConfig struct {
	InputFormat  string `yaml:"input_format"`
	Device       string `yaml:"device"`
	ChunkSeconds int    `yaml:"chunk_seconds"`
}

type DefaultsConfig struct {
	SummaryLevel string `yaml:"summary_level"`
	Voice        string `yaml:"voice"`
}

type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var summaryLevels = map[string]bool{
	"quick":    true,
	"standard": true,
	"detailed": true,
}

// Default builds a config from defaults and environment overrides alone,
// used when no config file is present.
func Default() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{BaseURL: "http://localhost:8000"},
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML config file, applies environment overrides, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BRIEFCAST_SERVER_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("BRIEFCAST_VOICE"); v != "" {
		c.Defaults.Voice = v
	}
	if v := os.Getenv("BRIEFCAST_SUMMARY_LEVEL"); v != "" {
		c.Defaults.SummaryLevel = v
	}
}

func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("server.base_url must be an absolute URL")
	}

	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 120
	}
	if c.Recording.InputFormat == "" {
		c.Recording.InputFormat = defaultInputFormat()
	}
	if c.Recording.Device == "" {
		c.Recording.Device = defaultDevice(c.Recording.InputFormat)
	}
	if c.Recording.ChunkSeconds == 0 {
		c.Recording.ChunkSeconds = 1
	}
	if c.Defaults.SummaryLevel == "" {
		c.Defaults.SummaryLevel = "standard"
	}
	if !summaryLevels[c.Defaults.SummaryLevel] {
		return fmt.Errorf("defaults.summary_level must be quick, standard, or detailed")
	}
	if c.Defaults.Voice == "" {
		c.Defaults.Voice = "nova"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// defaultInputFormat picks the ffmpeg capture backend for the current OS
func defaultInputFormat() string {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "alsa"
	}
}

func defaultDevice(inputFormat string) string {
	if inputFormat == "avfoundation" {
		return ":default"
	}
	return "default"
}
