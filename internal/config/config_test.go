package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Server: ServerConfig{
					BaseURL: "http://localhost:8000",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing base url",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "relative base url",
			config: Config{
				Server: ServerConfig{
					BaseURL: "localhost:8000/api",
				},
			},
			wantErr: true,
		},
		{
			name: "bad summary level",
			config: Config{
				Server:   ServerConfig{BaseURL: "http://localhost:8000"},
				Defaults: DefaultsConfig{SummaryLevel: "verbose"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{BaseURL: "https://brief.example.com"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %v, want 120", cfg.Server.TimeoutSeconds)
	}
	if cfg.Defaults.SummaryLevel != "standard" {
		t.Errorf("SummaryLevel = %v, want standard", cfg.Defaults.SummaryLevel)
	}
	if cfg.Defaults.Voice != "nova" {
		t.Errorf("Voice = %v, want nova", cfg.Defaults.Voice)
	}
	if cfg.Recording.ChunkSeconds != 1 {
		t.Errorf("ChunkSeconds = %v, want 1", cfg.Recording.ChunkSeconds)
	}
	if cfg.Paths.Temp == "" || cfg.Paths.Inbox == "" || cfg.Paths.Output == "" {
		t.Error("path defaults not applied")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  base_url: "http://localhost:8000"
  timeout_seconds: 30

recording:
  input_format: "alsa"
  device: "hw:1"

defaults:
  summary_level: "detailed"
  voice: "echo"

paths:
  inbox: "data/inbox"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %v, want %v", cfg.Server.BaseURL, "http://localhost:8000")
	}
	if cfg.Defaults.SummaryLevel != "detailed" {
		t.Errorf("SummaryLevel = %v, want detailed", cfg.Defaults.SummaryLevel)
	}
	if cfg.Recording.Device != "hw:1" {
		t.Errorf("Device = %v, want hw:1", cfg.Recording.Device)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte("server:\n  base_url: \"http://localhost:8000\"\n")); err != nil {
		t.Fatal(err)
	}
	tmpfile.Close()

	t.Setenv("BRIEFCAST_SERVER_URL", "https://brief.example.com")
	t.Setenv("BRIEFCAST_VOICE", "shimmer")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != "https://brief.example.com" {
		t.Errorf("BaseURL = %v, env override not applied", cfg.Server.BaseURL)
	}
	if cfg.Defaults.Voice != "shimmer" {
		t.Errorf("Voice = %v, env override not applied", cfg.Defaults.Voice)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
