// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the front-end workflow shared by the terminal and web
// surfaces: the people search with its result set, the relationship form with
// its selection state, and the services that talk to the people API through
// [adapter.APIAdapter].
//
// State holders ([PeopleSearch], [RelationshipForm]) perform no I/O and are
// driven from a single goroutine (the bubbletea update loop or one HTTP
// request). I/O lives behind [PeopleService] and [RelationshipService].
package service

import (
	"context"

	"github.com/MKhiriev/go-relations-map/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/services_mock.go -package=servicemock

// PeopleService runs a single people search against the API.
type PeopleService interface {
	// Search fetches the people matching req.Query. The result always echoes
	// req so the caller can tell stale results apart; failures are reported
	// in SearchResult.Err, never by panicking or blocking forever on a
	// cancelled ctx.
	Search(ctx context.Context, req SearchRequest) SearchResult
}

// RelationshipService submits relationship drafts to the API.
type RelationshipService interface {
	// Create posts draft as a new relationship. Every call issues one POST;
	// submitting the same draft twice creates two requests.
	// Returns [ErrUnknownRelationType] without any request when draft.Tipo is
	// not supported, and the adapter error otherwise.
	Create(ctx context.Context, draft models.RelationshipDraft) (models.Relationship, error)
}
