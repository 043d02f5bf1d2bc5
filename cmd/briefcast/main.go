package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/danghoanglong/briefcast/internal/app"
	"github.com/danghoanglong/briefcast/internal/cli"
	"github.com/danghoanglong/briefcast/internal/config"
)

func main() {
	// A missing .env is fine; it only carries optional overrides.
	godotenv.Load()

	configPath := os.Getenv("BRIEFCAST_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	deps := &cli.Dependencies{App: app.New(cfg)}

	if err := cli.NewRootCmd(deps).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when none exists.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}
	return config.Load(path)
}
