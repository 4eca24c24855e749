package main

import (
	"context"
	"fmt"

	"github.com/dchernov/weightkeeper/internal/adapter"
	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/handler"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/server"
	"github.com/dchernov/weightkeeper/internal/service"
	"github.com/dchernov/weightkeeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("weightkeeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Err(err).Msg("error closing repositories")
		}
	}()

	notifier := adapter.NewGoalNotifier(cfg.Notify, log)

	services, err := service.NewServices(repositories, *cfg, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
