package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/app"
	"github.com/samuelzcom/berlin-time-format-service/internal/config"
	"github.com/samuelzcom/berlin-time-format-service/internal/handler"
	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
	"github.com/samuelzcom/berlin-time-format-service/internal/router"
	"github.com/samuelzcom/berlin-time-format-service/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)
	metrics.SetBuildInfo(version.Version, version.Commit)

	application, err := app.New()
	if err != nil {
		logger.Fatal("Failed to initialize application",
			slog.String("error", err.Error()))
	}

	// Create HTTP servers
	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      application.Router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	var adminSrv *http.Server
	if cfg.AdminEnabled {
		adminSrv = &http.Server{
			Addr:         cfg.AdminAddr(),
			Handler:      router.NewAdmin(handler.NewHealthHandler(application.Location, version.Version)),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
		go serve(adminSrv, "admin")
	}

	go serve(srv, "public")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}
	if adminSrv != nil {
		if err := adminSrv.Shutdown(ctx); err != nil {
			logger.Error("Admin server shutdown error",
				slog.String("error", err.Error()))
		}
	}

	logger.Info("Server exited")
}

func serve(srv *http.Server, name string) {
	log := logger.WithFields(
		slog.String("listener", name),
		slog.String("addr", srv.Addr))

	log.Info("Starting server", slog.String("version", version.String()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
