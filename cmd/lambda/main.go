package main

import (
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/app"
	"github.com/samuelzcom/berlin-time-format-service/internal/config"
	"github.com/samuelzcom/berlin-time-format-service/internal/lambdaadapter"
	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
	"github.com/samuelzcom/berlin-time-format-service/internal/version"
)

func main() {
	// Listener settings are ignored here; only logging applies.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)
	metrics.SetBuildInfo(version.Version, version.Commit)

	application, err := app.New()
	if err != nil {
		logger.Fatal("Failed to initialize application",
			slog.String("error", err.Error()))
	}

	logger.Info("Starting lambda handler", slog.String("version", version.String()))
	lambda.Start(lambdaadapter.New(application.Router).Handle)
}
