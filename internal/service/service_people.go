package service

import (
	"context"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/logger"
)

type peopleService struct {
	api    adapter.APIAdapter
	logger *logger.Logger
}

func NewPeopleService(api adapter.APIAdapter, logger *logger.Logger) PeopleService {
	return &peopleService{api: api, logger: logger}
}

func (p *peopleService) Search(ctx context.Context, req SearchRequest) SearchResult {
	people, err := p.api.FetchPeople(ctx, req.Query)
	if err != nil {
		p.logger.Warn().Err(err).
			Str("search", req.Query).
			Uint64("generation", req.Generation).
			Msg("people search failed")
		return SearchResult{Request: req, Err: err}
	}

	return SearchResult{Request: req, People: people}
}
