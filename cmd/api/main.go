package main

import (
	"context"
	"fmt"

	"taskboard/config"
	_ "taskboard/docs" // Swagger docs
	"taskboard/internal/httpserver"
	"taskboard/pkg/log"
)

// @title       Taskboard API
// @description Owner-scoped task board with natural-language task extraction and search suggestions.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Taskboard API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run (blocks until SIGINT/SIGTERM)
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
