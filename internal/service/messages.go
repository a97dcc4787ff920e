// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/app"
)

// UserMessage translates an error from the workflow or the adapter into the
// single message string shown by the front ends. A nil error yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrIncompleteDraft):
		return app.MsgSelectBothPeople
	case errors.Is(err, ErrUnknownRelationType):
		return app.MsgUnknownRelationType
	case errors.Is(err, adapter.ErrPeopleUnavailable):
		return app.MsgPeopleUnavailable
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.HasDetail() {
		return apiErr.Detail
	}

	return app.MsgRelationshipSaveFailed
}
