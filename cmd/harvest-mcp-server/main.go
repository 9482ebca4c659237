package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestlab/harvest-mcp-server/configs"
	"github.com/harvestlab/harvest-mcp-server/internal/app"
	"github.com/harvestlab/harvest-mcp-server/internal/audit"
	"github.com/harvestlab/harvest-mcp-server/internal/config"
	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
	"github.com/harvestlab/harvest-mcp-server/internal/log"
	"github.com/harvestlab/harvest-mcp-server/internal/settings"
	"github.com/harvestlab/harvest-mcp-server/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var raw []byte
	if cfg.SettingsPath != "" {
		raw, err = os.ReadFile(cfg.SettingsPath)
	} else {
		raw, err = configs.Load(configs.DefaultName)
	}
	if err != nil {
		logger.Error("load settings failed", "error", err)
		os.Exit(1)
	}

	srvSettings, err := settings.Load(raw)
	if err != nil {
		logger.Error("parse settings failed", "error", err)
		os.Exit(1)
	}

	builder := tools.Builder{
		Logger: logger,
		Audit:  audit.New(logger),
		Ambient: harvest.Credentials{
			AccessToken: cfg.AccessToken,
			AccountID:   cfg.AccountID,
		},
		BaseURL: cfg.BaseURL,
	}
	server := builder.Build(srvSettings.Server.Name, srvSettings.Server.Version)

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch srvSettings.Server.Transport {
	case settings.TransportStdio:
		if err := runStdio(baseCtx, server); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runHTTP(baseCtx, cfg, srvSettings, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func runStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(ctx context.Context, envCfg config.Config, srvSettings *settings.Settings, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: srvSettings.Server.HTTP.Stateless,
	})

	application, err := app.New(ctx, srvSettings.Server.HTTP, handler, logger, envCfg.ShutdownTimeout)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}
