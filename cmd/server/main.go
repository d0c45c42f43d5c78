package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"filesmanager/docs"
	"filesmanager/internal/app"
	"filesmanager/internal/config"
	"filesmanager/internal/handler"
	"filesmanager/internal/logger"
	"filesmanager/internal/router"
)

const shutdownTimeout = 10 * time.Second

// @title Files Manager API
// @version 1.0
// @description File and folder storage with token sessions and image thumbnails.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name X-Token
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(e, a.AuthService, router.Handlers{
		App:  handler.NewAppHandler(a.AppService),
		User: handler.NewUserHandler(a.AuthService, a.UserService),
		Auth: handler.NewAuthHandler(a.AuthService),
		File: handler.NewFileHandler(a.AuthService, a.FileService),
	})

	go func() {
		slog.Info("server starting",
			"port", cfg.ServerPort,
			"env", cfg.AppEnv,
			"db", cfg.DBDriver,
			"storage", cfg.StorageType,
			"swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html",
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
