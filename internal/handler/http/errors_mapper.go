package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrIncompleteDraft:     http.StatusUnprocessableEntity,
	service.ErrUnknownRelationType: http.StatusUnprocessableEntity,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrUnprocessableEntity: http.StatusUnprocessableEntity,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:    http.StatusBadGateway,
}

// statusFromError maps a submit failure to the status of the rendered page.
// Anything unknown, transport failures included, is reported as 502.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}
