package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/devserver"
	handler "github.com/MKhiriev/go-fin-tracker/internal/handler/http"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-fin-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("issuer", cfg.TokenIssuer).
		Dur("token_duration", cfg.TokenDuration).
		Msg("received configs")

	backend := devserver.New(*cfg, log)
	routes := handler.NewHandler(backend, log).Init()

	srv, err := server.NewServer(routes, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
