package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lakshmikanth26/new-job-journey/internal/catalog"
	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/backups"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/custom"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/programs"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/projects"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/system"
	"github.com/lakshmikanth26/new-job-journey/internal/cli/tasks"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/errors"
	"github.com/lakshmikanth26/new-job-journey/internal/files"
	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/logger"
	"github.com/lakshmikanth26/new-job-journey/internal/plan"
	"github.com/lakshmikanth26/new-job-journey/internal/registry"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
	"github.com/lakshmikanth26/new-job-journey/internal/views"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or the OS keyring instead." default:"~/.config/compass/compass.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize compass storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Serve  system.ServeCmd  `cmd:"" help:"Serve the HTTP API for the remote gateway."`

	Today    tasks.TodayCmd    `cmd:"" help:"Show today's tasks."`
	Day      tasks.DayCmd      `cmd:"" help:"Show tasks for a plan day."`
	Progress tasks.ProgressCmd `cmd:"" help:"Show per-day and overall progress."`
	Toggle   tasks.ToggleCmd   `cmd:"" help:"Toggle a task's completion."`
	Note     tasks.NoteCmd     `cmd:"" help:"Set or clear notes on a task."`
	Link     tasks.LinkCmd     `cmd:"" help:"Set or clear a task's reference link."`
	Revise   tasks.ReviseCmd   `cmd:"" help:"Toggle a completed task's revised flag."`
	Revision tasks.RevisionCmd `cmd:"" help:"List completed tasks for revision."`

	Attach struct {
		Add    tasks.AttachAddCmd    `cmd:"" help:"Upload files and attach them to a task."`
		Remove tasks.AttachRemoveCmd `cmd:"" help:"Remove an attachment from a task."`
	} `cmd:"" help:"Manage task attachments."`

	Custom struct {
		Add    custom.AddCmd    `cmd:"" help:"Add a custom task to a plan day."`
		Delete custom.DeleteCmd `cmd:"" help:"Delete a custom task and its progress."`
		List   custom.ListCmd   `cmd:"" help:"List custom tasks."`
	} `cmd:"" help:"Manage custom tasks."`

	Program struct {
		Add    programs.AddCmd    `cmd:"" help:"Add a coding problem."`
		List   programs.ListCmd   `cmd:"" help:"List coding problems."`
		Edit   programs.EditCmd   `cmd:"" help:"Edit a coding problem."`
		Delete programs.DeleteCmd `cmd:"" help:"Delete a coding problem."`
	} `cmd:"" help:"Track coding problems."`

	Project struct {
		Add    projects.AddCmd    `cmd:"" help:"Add a project."`
		List   projects.ListCmd   `cmd:"" help:"List projects."`
		Edit   projects.EditCmd   `cmd:"" help:"Edit a project."`
		Delete projects.DeleteCmd `cmd:"" help:"Delete a project."`
	} `cmd:"" help:"Track portfolio projects."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`

	Remote struct {
		SetKey   system.RemoteSetKeyCmd   `cmd:"" name:"set-key" help:"Store the remote access key in the OS keyring."`
		ClearKey system.RemoteClearKeyCmd `cmd:"" name:"clear-key" help:"Remove the remote access key from the OS keyring."`
		Status   system.RemoteStatusCmd   `cmd:"" help:"Show remote gateway configuration status."`
	} `cmd:"" help:"Manage the remote gateway."`
}

// expandHome resolves a leading "~/" against the user's home directory.
// Connection strings pass through untouched.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func newStore(config string) storage.Provider {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use environment variables or .pgpass to supply the password.\n")
			os.Exit(1)
		}
		return storage.NewPostgresStore(config)
	}
	if strings.HasSuffix(config, ".db") {
		return storage.NewSQLiteStore(config)
	}
	return storage.NewJSONStore(config)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("30-day job-prep study plan tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(expandHome(constants.DefaultConfigPath)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store := newStore(configPath)

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	gwCfg := gateway.ConfigFromEnv()
	gw := gateway.NewClient(gwCfg, nil)

	led := ledger.New(store)
	reg := registry.New(store, led)

	appCtx := &cli.Context{
		Store:     store,
		Ledger:    led,
		Registry:  reg,
		Programs:  catalog.NewPrograms(store, gw),
		Projects:  catalog.NewProjects(store, gw),
		Gateway:   gw,
		Files:     files.NewAdapter(gwCfg, nil),
		Views:     views.New(led, reg),
		StartDate: plan.StartDate(),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}

	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}
}
