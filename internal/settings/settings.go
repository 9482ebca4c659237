// Package settings loads the YAML server-settings file.
package settings

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Settings is the top-level YAML configuration.
type Settings struct {
	// Server describes the MCP server settings.
	Server ServerSettings `yaml:"server"`
}

// ServerSettings defines MCP server settings.
type ServerSettings struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// HTTP configures the HTTP transport.
	HTTP HTTPSettings `yaml:"http"`
}

// HTTPSettings configures the HTTP transport.
type HTTPSettings struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables session tracking.
	Stateless bool `yaml:"stateless"`
}

// Load parses YAML bytes into Settings and validates them.
func Load(data []byte) (*Settings, error) {
	var cfg Settings
	if err := yaml.Load(data, &cfg, yaml.WithKnownFields()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Settings) {
	if strings.TrimSpace(cfg.Server.Name) == "" {
		cfg.Server.Name = "harvest-mcp-server"
	}
	if strings.TrimSpace(cfg.Server.Version) == "" {
		cfg.Server.Version = "dev"
	}
	if strings.TrimSpace(cfg.Server.Transport) == "" {
		cfg.Server.Transport = TransportStdio
	}
	if strings.TrimSpace(cfg.Server.HTTP.Listen) == "" {
		cfg.Server.HTTP.Listen = ":8080"
	}
	if strings.TrimSpace(cfg.Server.HTTP.Path) == "" {
		cfg.Server.HTTP.Path = "/mcp"
	}
}

func validate(cfg *Settings) error {
	switch cfg.Server.Transport {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("server.transport must be %q or %q, got %q",
			TransportStdio, TransportHTTP, cfg.Server.Transport)
	}
}
