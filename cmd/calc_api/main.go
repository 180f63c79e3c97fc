// Package main RPN Calc API
// @title RPN Calc API
// @version 1.0
// @description Arithmetic expression evaluator with exact division and evaluation history
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/rpn-calc/docs"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
	"github.com/DjordjeVuckovic/rpn-calc/internal/router"
	"github.com/DjordjeVuckovic/rpn-calc/internal/server"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/rpn-calc/pkg/server"
	"github.com/labstack/echo/v4"
)

type closer interface {
	Close()
}

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	s := server.New(cfg.Server, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "RPN Calc API is running")
	})

	storer, err := factory.NewStorer(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history storage", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	if hc, ok := storer.(pkgserver.HealthChecker); ok {
		s.WithHealthChecker(hc)
	}
	slog.Info("History storage ready", "type", cfg.StorageConfig.Type)

	calcRouter := router.NewCalcRouter(s.Echo, calc.NewPipeline(), storer,
		router.WithMaxExpressionLength(cfg.Server.MaxExpressionLength))
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining requests...")
	}()

	err = s.Start()
	if c, ok := storer.(closer); ok {
		c.Close()
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
