package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/server"
)

const (
	appName    = "gamescout-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger(logging.Config{Service: appName, Version: appVersion, Output: os.Stderr}).
			Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
