package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/cicddemo/server/internal/config"
	"codeberg.org/cicddemo/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// @title Jenkins CI/CD App
// @version 1.0.0
// @description Demonstration service exercised by the CI/CD pipeline.
// @BasePath /

func main() {
	logger.Info("starting jenkins-cicd-app")

	cfg, err := setup()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	srv := NewServer(cfg)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening",
			"addr", cfg.Addr(),
			"environment", cfg.Environment,
			"version", config.Version,
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// loads configuration (including .env) and aligns logger and gin mode with it
func setup() (*config.Config, error) {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	logger.Configure(cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return cfg, nil
}
