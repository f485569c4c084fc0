package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwidmann/remindcal/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m := tui.NewModel(tui.Options{
		Client:       ctx.Client,
		Identity:     ctx.Identity,
		Snapshots:    ctx.Snapshots,
		PollInterval: time.Duration(ctx.Config.PollSeconds) * time.Second,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
