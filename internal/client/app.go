package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or a termination signal arrives.
// Leaving the UI on purpose is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled):
		a.logger.Info().Msg("client stopped by signal")
		return nil
	default:
		return fmt.Errorf("ui run: %w", err)
	}
}
