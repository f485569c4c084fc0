package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mwidmann/remindcal/internal/api"
	"github.com/mwidmann/remindcal/internal/cache"
	"github.com/mwidmann/remindcal/internal/cli"
	"github.com/mwidmann/remindcal/internal/config"
	apperrors "github.com/mwidmann/remindcal/internal/errors"
	"github.com/mwidmann/remindcal/internal/identity"
	"github.com/mwidmann/remindcal/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Server  string `help:"Reminder server base URL (overrides config)."`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Add      cli.AddCmd      `cmd:"" help:"Add a reminder from a natural-language note."`
	List     cli.ListCmd     `cmd:"" help:"List all reminders."`
	Month    cli.MonthCmd    `cmd:"" help:"Print a month grid with reminder markers."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a reminder."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark a reminder as completed."`
	Watch    cli.WatchCmd    `cmd:"" help:"Poll the server and print reminder changes."`
	Register cli.RegisterCmd `cmd:"" help:"Register a demo account."`
	Login    cli.LoginCmd    `cmd:"" help:"Verify demo account credentials."`
	Users    cli.UsersCmd    `cmd:"" help:"List registered demo accounts."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Print this installation's user identifier."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("remindcal"),
		kong.Description("Terminal calendar client for the reminder service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = filepath.Join(configDir, "config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Server != "" {
		cfg.ServerURL = CLI.Server
	}

	// Calendar-day keys and agenda grouping derive in the configured zone.
	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	time.Local = loc

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	snapshots := cache.NewStore(filepath.Join(configDir, "snapshots.db"))
	if err := snapshots.Open(); err != nil {
		// The cache is an optimization; run without it rather than failing.
		logger.Warn("snapshot cache unavailable", "error", err)
		snapshots = nil
	} else {
		defer snapshots.Close()
	}

	appCtx := &cli.Context{
		Client:    api.New(cfg.ServerURL),
		Identity:  identity.New(configDir),
		Config:    cfg,
		Snapshots: snapshots,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
