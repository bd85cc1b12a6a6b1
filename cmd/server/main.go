package main

import (
	"fmt"

	"github.com/MKhiriev/hopwhistle/internal/config"
	handler "github.com/MKhiriev/hopwhistle/internal/handler/http"
	"github.com/MKhiriev/hopwhistle/internal/logger"
	"github.com/MKhiriev/hopwhistle/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hopwhistle-api")
	cfg, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.ForEnvironment(cfg.Environment)
	log.Debug().Object("settings", cfg).Msg("received configs")

	if _, err := cfg.Auth.SigningMethod(); err != nil {
		log.Fatal().Err(err).Msg("error resolving token signing method")
	}

	srv, err := server.NewServer(handler.NewHandler(cfg, log).Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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
