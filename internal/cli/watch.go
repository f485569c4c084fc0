package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/mwidmann/remindcal/internal/format"
	"github.com/mwidmann/remindcal/internal/logger"
	"github.com/mwidmann/remindcal/internal/models"
)

type WatchCmd struct {
	Cron string `help:"Cron descriptor for the poll schedule (overrides config)."`
}

// Run polls the server on a schedule and prints reminders that appeared
// since the previous poll. The snapshot store doubles as the diff baseline
// so a restart does not replay everything as new.
func (c *WatchCmd) Run(ctx *Context) error {
	spec := ctx.Config.WatchCron
	if c.Cron != "" {
		spec = c.Cron
	}

	userID := ctx.UserID()
	known := map[int64]models.Reminder{}
	if ctx.Snapshots != nil {
		if snap, _, ok, err := ctx.Snapshots.Get(userID); err == nil && ok {
			for _, r := range snap {
				known[r.ID] = r
			}
		}
	}

	poll := func() {
		reminders, err := ctx.Client.ListAll(context.Background(), userID)
		if err != nil {
			logger.Warn("poll failed", "error", err)
			return
		}
		for _, r := range reminders {
			prev, seen := known[r.ID]
			switch {
			case !seen:
				fmt.Printf("new: %s\n", format.ListRow(r))
			case !prev.Completed && r.Completed:
				fmt.Printf("completed: %s\n", format.ListRow(r))
			}
			known[r.ID] = r
		}
		if ctx.Snapshots != nil {
			if err := ctx.Snapshots.Put(userID, reminders); err != nil {
				logger.Warn("snapshot write failed", "error", err)
			}
		}
	}

	sched := cron.New()
	if _, err := sched.AddFunc(spec, poll); err != nil {
		return fmt.Errorf("invalid cron descriptor %q: %w", spec, err)
	}

	fmt.Printf("Watching for reminders (%s), press Ctrl+C to stop\n", spec)
	poll()
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	fmt.Println("Stopped")
	return nil
}
