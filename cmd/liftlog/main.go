package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/cli/backups"
	"github.com/kimurataturyu-sys/workout-log/internal/cli/presets"
	"github.com/kimurataturyu-sys/workout-log/internal/cli/sessions"
	"github.com/kimurataturyu-sys/workout-log/internal/cli/sets"
	"github.com/kimurataturyu-sys/workout-log/internal/cli/system"
	"github.com/kimurataturyu-sys/workout-log/internal/config"
	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	apperrors "github.com/kimurataturyu-sys/workout-log/internal/errors"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/storage"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"${config_file}"`
	Store   string `help:"Store path (overrides the config file)."`
	Backend string `help:"Storage backend, sqlite or json (overrides the config file)."`
	Debug   bool   `help:"Log debug output to stderr."`
	Yes     bool   `short:"y" help:"Answer yes to every confirmation."`

	Init     system.InitCmd      `cmd:"" help:"Initialize liftlog storage."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd  `cmd:"" help:"Check the log for integrity problems."`
	DebugCmd system.DebugCmd     `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Preset   presets.PresetCmd   `cmd:"" help:"Manage workout presets."`
	Session  sessions.SessionCmd `cmd:"" help:"Run a workout session."`
	Swap     sessions.SwapCmd    `cmd:"" help:"Find replacement exercises."`
	Log      sets.LogCmd         `cmd:"" help:"Log a set."`
	Set      sets.SetCmd         `cmd:"" help:"Edit or delete logged sets."`
	History  sets.HistoryCmd     `cmd:"" help:"Show logged sets."`
	Goal     sets.GoalCmd        `cmd:"" help:"Show the goal for the next set."`
	Chart    sets.ChartCmd       `cmd:"" help:"Show progress for an exercise."`
	Export   backups.ExportCmd   `cmd:"" help:"Export all data as JSON."`
	Import   backups.ImportCmd   `cmd:"" help:"Replace all data with an export."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var root CLI
	exitCode := -1
	parser, err := kong.New(&root,
		kong.Name(constants.AppName),
		kong.Description("Strength training logger with progression goals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, apperrors.Format(err))
		return 1
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help and --version end here
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	cfg, err := config.Load(root.Config)
	if err != nil {
		fmt.Fprintln(stderr, apperrors.Format(err))
		return 1
	}
	if root.Store != "" {
		cfg.Storage.Path = root.Store
	}
	if root.Backend != "" {
		cfg.Storage.Backend = root.Backend
	}
	if root.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, apperrors.Format(err))
		return 1
	}

	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		Dir:    filepath.Dir(cfg.StorePath()),
		Stderr: stderr,
	}); err != nil {
		fmt.Fprintf(stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	defer logger.Close()

	store, err := storage.Open(cfg.Storage.Backend, cfg.StorePath())
	if err != nil {
		fmt.Fprintln(stderr, apperrors.Format(err))
		return 1
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:     store,
		Config:    cfg,
		Out:       stdout,
		AssumeYes: root.Yes,
	}

	// Init and doctor handle their own loading
	if cmd := ctx.Selected(); cmd != nil && cmd.Name != "init" && cmd.Name != "doctor" {
		if err := store.Load(); err != nil {
			fmt.Fprintln(stderr, apperrors.Format(err))
			return 1
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("Command execution failed", "command", ctx.Command(), "error", err)
		fmt.Fprintln(stderr, apperrors.Format(err))
		return 1
	}
	return 0
}
