package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-client/internal/apiserver"
	"github.com/MKhiriev/go-pass-client/internal/config"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/store"
	"github.com/MKhiriev/go-pass-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("go-pass-server", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	repos, err := store.NewRepositories(context.Background(), cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening storage")
	}
	defer repos.Close()

	svc, err := apiserver.NewService(repos, apiserver.ServiceConfig{
		TokenSignKey:  cfg.TokenSignKey,
		TokenIssuer:   cfg.TokenIssuer,
		TokenDuration: cfg.TokenDuration,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating service")
	}
	if cfg.TokenSignKey == "" {
		log.Warn().Msg("no token sign key configured, sessions will not survive a restart")
	}

	handler := apiserver.NewHandler(svc, cfg.BasePath, log)

	srv, err := apiserver.NewServer(handler, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server run error")
		repos.Close()
		os.Exit(1)
	}
}
