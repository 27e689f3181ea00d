package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jiwoolee/contestpilot/internal/cli"
	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/contests"
	apperrors "github.com/jiwoolee/contestpilot/internal/errors"
	"github.com/jiwoolee/contestpilot/internal/logger"
	"github.com/jiwoolee/contestpilot/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db/.sqlite suffix selects the SQLite store, anything else the JSON store." default:"~/.config/contestpilot/contestpilot.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd `cmd:"" help:"Initialize contestpilot storage."`
	Contest struct {
		Add    cli.ContestAddCmd    `cmd:"" help:"Track a new contest."`
		List   cli.ContestListCmd   `cmd:"" help:"List tracked contests."`
		Remove cli.ContestRemoveCmd `cmd:"" help:"Stop tracking a contest."`
		Status cli.ContestStatusCmd `cmd:"" help:"Update a contest's lifecycle status."`
	} `cmd:"" help:"Manage tracked contests."`
	Schedule struct {
		Generate cli.ScheduleGenerateCmd `cmd:"" help:"Generate (or regenerate) a work schedule."`
		Show     cli.ScheduleShowCmd     `cmd:"" help:"Show a contest's schedule."`
		Remove   cli.ScheduleRemoveCmd   `cmd:"" help:"Remove a contest's schedule."`
	} `cmd:"" help:"Manage contest schedules."`
	Phase struct {
		Advance cli.PhaseAdvanceCmd `cmd:"" help:"Cycle a phase's status one step." default:"1"`
		Set     cli.PhaseSetCmd     `cmd:"" help:"Set a phase's status directly."`
	} `cmd:"" help:"Manage schedule phases."`
	Log     cli.LogCmd   `cmd:"" help:"Log hours worked today on a contest."`
	Focus   cli.FocusCmd `cmd:"" help:"Show the ranked focus list for today."`
	Profile struct {
		Set        cli.ProfileSetCmd  `cmd:"" help:"Set nominal weekly availability."`
		Show       cli.ProfileShowCmd `cmd:"" help:"Show the availability profile." default:"1"`
		Constraint struct {
			Add    cli.ConstraintAddCmd    `cmd:"" help:"Add a period availability constraint."`
			Remove cli.ConstraintRemoveCmd `cmd:"" help:"Remove a constraint."`
		} `cmd:"" help:"Manage availability constraints."`
	} `cmd:"" help:"Manage the availability profile."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored schedules for structural conflicts."`
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Contest opportunity tracker with schedule generation and daily focus guidance"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)
	if err := logger.Init(configPath, CLI.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") || strings.HasSuffix(configPath, ".sqlite") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{
		Store:    store,
		Contests: contests.NewService(store),
	}

	// Init handles its own bootstrap; every other command needs a loaded store
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
