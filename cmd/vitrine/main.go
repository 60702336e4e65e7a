// Package main is the entry point for the Vitrine showcase.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/app"
	"github.com/maisonverte/vitrine/internal/config"
	"github.com/maisonverte/vitrine/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Vitrine ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("showcase error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("showcase closed normally")
}
