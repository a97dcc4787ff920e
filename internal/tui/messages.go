package tui

import (
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/models"
)

type searchDoneMsg struct {
	result service.SearchResult
}

type submitDoneMsg struct {
	relationship models.Relationship
	err          error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
