// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method is not handled.
// This handler answers 404 instead, so e.g. GET /relationships looks like any
// other unknown page. If the method is registered for the exactly matching
// pattern, the request is handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
