package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T) (*Handler, *chi.Mux) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics, err := newRequestMetrics(reg)
	require.NoError(t, err)

	h := newTestHandler()
	h.metrics = metrics
	h.registry = reg

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/people/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/relationships", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	router.Get(metricsPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return h, router
}

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h, router := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/people/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/people/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/relationships", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.requestCount.WithLabelValues("GET", "/people/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requestCount.WithLabelValues("POST", "/relationships", "422")))
	assert.Equal(t, 2, testutil.CollectAndCount(h.metrics.requestDuration))
}

func TestWithMetrics_ExcludesMetricsPath(t *testing.T) {
	h, router := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, metricsPath, nil))

	assert.Equal(t, 0, testutil.CollectAndCount(h.metrics.requestCount))
}

func TestNewRequestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := newRequestMetrics(reg)
	require.NoError(t, err)

	_, err = newRequestMetrics(reg)
	assert.Error(t, err)
}
