package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fin-tracker/internal/client"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-fin-client").Fatal().Err(err).Msg("error getting configs")
	}

	// The UI owns the terminal, so the client logs to a file.
	log := logger.NewClientLogger("go-fin-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
