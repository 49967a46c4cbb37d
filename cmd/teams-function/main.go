package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/riskibarqy/ihl-standings/internal/app"
	"github.com/riskibarqy/ihl-standings/internal/config"
	"github.com/riskibarqy/ihl-standings/internal/observability"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("function", "teams")
	logging.SetDefault(logger)

	shutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	handler, err := app.NewTeamsFunction(cfg, logger)
	if err != nil {
		logger.Error("build teams function", "error", err)
		os.Exit(1)
	}

	lambda.StartWithOptions(handler, lambda.WithEnableSIGTERM(func() {
		_ = shutdown(context.Background())
		_ = logger.Sync()
	}))
}
