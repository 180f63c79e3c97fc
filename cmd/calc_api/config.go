package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpn-calc/internal/server"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env.GetOrDefault("LOG_LEVEL", "info"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, falling back to info", "error", err)
		level = slog.LevelInfo
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		Server:        sCfg,
		StorageConfig: *storageCfg,
		LogLevel:      level,
	}, nil
}
