package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/client"
	"github.com/MKhiriev/go-relations-map/internal/config"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/internal/tui"
	"github.com/MKhiriev/go-relations-map/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("relations-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithFallbackVersion(cfg.App.Version)
	printBuildInfo(buildInfo)

	layout, err := service.ParseLayout(cfg.App.Layout)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing layout")
	}

	apiAdapter, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	services := service.NewServices(apiAdapter, log)

	ui, err := tui.New(services, layout, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
