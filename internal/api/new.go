package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
)

type implClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Client for the configured backend.
func New(cfg *config.Config, log logger.Logger) Client {
	return &implClient{
		baseURL: strings.TrimSuffix(cfg.Server.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		},
		logger: log,
	}
}
