package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/prefs"
)

// Config holds everything needed to start the dashboard.
type Config struct {
	Client  *api.Client
	Prefs   *prefs.Store
	Timeout time.Duration
}

// Run starts the dashboard and blocks until the user quits or the context
// is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Client == nil {
		return common.ErrMissingConfig
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = api.DefaultTimeout
	}

	model := NewModel(cfg.Client, cfg.Prefs, cfg.Timeout)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
