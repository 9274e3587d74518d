package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kinkeeper-app/kinkeeper/internal/config"
	handler "github.com/kinkeeper-app/kinkeeper/internal/handler/http"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/server"
	"github.com/kinkeeper-app/kinkeeper/internal/service"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kinkeeper-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(db, repos, cfg.Auth, log)

	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
