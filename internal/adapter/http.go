package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-relations-map/internal/config"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/utils"
	"github.com/MKhiriev/go-relations-map/models"
)

const (
	peoplePath        = "/people"
	relationshipsPath = "/relationships"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A zero timeout leaves requests unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	logger.Info().Str("base_url", baseURL).Dur("timeout", adapterCfg.RequestTimeout).Msg("people api adapter created")

	return &httpAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPeople implements [APIAdapter]. It sends GET /people, adding
// ?search=<search> only when search is not empty, and decodes the JSON array
// of people. A JSON null body is returned as an empty slice.
func (h *httpAPIAdapter) FetchPeople(ctx context.Context, search string) ([]models.Person, error) {
	start := time.Now()

	req := h.client.R().SetContext(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get(peoplePath)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch people request: %w", ErrPeopleUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPeopleUnavailable, err)
	}

	var people []models.Person
	if err = json.Unmarshal(resp.Body(), &people); err != nil {
		return nil, fmt.Errorf("%w: decode people response: %w", ErrPeopleUnavailable, err)
	}
	if people == nil {
		people = []models.Person{}
	}

	h.logger.Debug().
		Str("search", search).
		Int("count", len(people)).
		Dur("duration", time.Since(start)).
		Msg("people fetched")

	return people, nil
}

// CreateRelationship implements [APIAdapter]. It POSTs req as JSON to
// POST /relationships. Returns a [*APIError] on a non-2xx status.
func (h *httpAPIAdapter) CreateRelationship(ctx context.Context, req models.RelationshipRequest) (models.Relationship, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(relationshipsPath)
	if err != nil {
		return models.Relationship{}, fmt.Errorf("create relationship request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Relationship{}, err
	}

	var created models.Relationship
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 {
		if err = json.Unmarshal(body, &created); err != nil {
			h.logger.Warn().Err(err).Int("status", resp.StatusCode()).Msg("relationship created but response body is not a relationship")
			return models.Relationship{}, nil
		}
	}

	return created, nil
}
