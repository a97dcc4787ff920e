// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the external people API.
//
// The primary abstraction is [APIAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIAdapter]) built on resty.
//
// Non-2xx responses are mapped to [*APIError], which unwraps to a status
// sentinel defined in errors.go, so callers can use [errors.Is] and
// [errors.As] without knowing about HTTP.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-relations-map/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines transport-agnostic communication with the people API.
// Implementations issue exactly one request per call: no retries, no
// idempotency keys.
type APIAdapter interface {
	// FetchPeople lists the people matching search, in the order returned by
	// the API. An empty search means "no filter" and sends no search
	// parameter. Every failure wraps [ErrPeopleUnavailable].
	FetchPeople(ctx context.Context, search string) ([]models.Person, error)

	// CreateRelationship posts req to the relationships endpoint. On a non-2xx
	// response it returns a [*APIError] carrying the server detail, if any.
	// The returned [models.Relationship] is decoded leniently: an empty or
	// unexpected success body yields a zero value and no error.
	CreateRelationship(ctx context.Context, req models.RelationshipRequest) (models.Relationship, error)
}
