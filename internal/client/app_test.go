package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(_ context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name      string
		uiErr     error
		cancelled bool
		wantErr   error
	}{
		{name: "normal exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "killed by signal", uiErr: fmt.Errorf("%w: context canceled", tea.ErrProgramKilled), cancelled: true},
		{name: "killed without signal", uiErr: tea.ErrProgramKilled, wantErr: tea.ErrProgramKilled},
		{name: "ui failure", uiErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelled {
				cancel()
			}

			err = app.run(ctx)
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
