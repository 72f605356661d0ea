package bootstrap

import (
	"log/slog"
	"os"

	"github.com/dotworks/PixieBot_Go/internal/config"
	"github.com/dotworks/PixieBot_Go/internal/logger"
)

// SetupLogger installs the default slog logger from app configuration.
func SetupLogger(cfg *config.Config) {
	logCfg := logger.ProductionConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat

	if env := os.Getenv("ENVIRONMENT"); env == "dev" || env == "development" {
		logCfg.Environment = "dev"
		logCfg.AddSource = true
	}

	logger.Init(logCfg)

	slog.Info("Logging initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)
}
