package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/client"
	"github.com/MKhiriev/go-pass-client/internal/config"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/tui"
	"github.com/MKhiriev/go-pass-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-pass-client", cfg.Log.FilePath, cfg.Log.Level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewServices(serverAdapter, models.NewSession(), log)

	ui := tui.New(services, tui.Options{
		BuildInfo:      buildInfo,
		CopyResetDelay: cfg.App.CopyResetDelay,
		Clipboard:      tui.SystemClipboard(),
	}, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
