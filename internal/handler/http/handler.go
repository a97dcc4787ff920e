package http

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/internal/utils"
	"github.com/MKhiriev/go-relations-map/models"
	"github.com/prometheus/client_golang/prometheus"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	traceIDs  *utils.UUIDGenerator

	page     *template.Template
	registry *prometheus.Registry
	metrics  *requestMetrics

	logger *logger.Logger
}

// NewHandler builds the web handler. Metrics are registered on a registry
// owned by the handler, so several handlers can coexist in one process.
func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	page, err := template.New("page.html.tmpl").Funcs(templateFuncs).ParseFS(templatesFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics, err := newRequestMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("error registering metrics: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		traceIDs:  utils.NewUUIDGenerator(),
		page:      page,
		registry:  registry,
		metrics:   metrics,
		logger:    logger,
	}, nil
}
