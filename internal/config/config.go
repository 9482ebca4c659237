package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// AccessToken is the ambient Harvest personal access token.
	AccessToken string `env:"HARVEST_ACCESS_TOKEN"`
	// AccountID is the ambient Harvest account identifier.
	AccountID string `env:"HARVEST_ACCOUNT_ID"`
	// BaseURL overrides the Harvest API endpoint.
	BaseURL string `env:"HARVEST_BASE_URL" envDefault:"https://api.harvestapp.com/v2"`
	// SettingsPath is an optional path to a YAML server-settings file.
	SettingsPath string `env:"HARVEST_MCP_CONFIG"`
	// LogLevel sets the logger level.
	LogLevel string `env:"HARVEST_MCP_LOG_LEVEL" envDefault:"info"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"HARVEST_MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
