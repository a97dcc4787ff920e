package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/config"
	handler "github.com/MKhiriev/go-relations-map/internal/handler/http"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/server"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("relations-web")
	cfg, err := config.GetWebConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithFallbackVersion(cfg.App.Version)
	printBuildInfo(buildInfo)

	log.Debug().Any("config", cfg).Msg("received configs")

	apiAdapter, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	services := service.NewServices(apiAdapter, log)

	h, err := handler.NewHandler(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
