// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-relations-map/internal/app"
)

// isServerUnavailable reports whether err looks like a network failure rather
// than an answer from the API.
func isServerUnavailable(err error) bool {
	if err == nil {
		return false
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// humanizeClipboardError explains a failed clipboard copy.
func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errNothingToCopy) {
		return app.MsgNothingToCopy
	}
	return "No se pudo copiar: " + err.Error()
}

var errNothingToCopy = errors.New("nothing to copy")
