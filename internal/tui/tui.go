// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal front end with Bubble Tea: a search
// box, two person pickers, a relation type toggle and a submit button on a
// single screen.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	layout    service.Layout
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, layout service.Layout, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PeopleService == nil || services.RelationshipService == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, layout: layout, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the relationship screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newRelationsModel(ctx, t.services, t.layout, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(relationsModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
