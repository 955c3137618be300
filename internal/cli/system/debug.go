package system

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show store path and backend."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the stored state as JSON."`
	Config *DebugConfigCmd `cmd:"" help:"Show the effective configuration."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	return printJSON(ctx, map[string]string{
		"path":    path,
		"backend": ctx.Store.Backend(),
		"log":     logger.Path(filepath.Dir(path)),
	})
}

type DebugDumpCmd struct {
	Key string `arg:"" optional:"" help:"Only this key (presets, sets, session, swapHistory)."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	state := ctx.Open().State()
	switch cmd.Key {
	case "presets":
		return printJSON(ctx, state.Presets)
	case "sets":
		return printJSON(ctx, state.Sets)
	case "session":
		return printJSON(ctx, state.Session)
	case "swapHistory":
		return printJSON(ctx, state.SwapHistory)
	case "":
		return printJSON(ctx, state)
	default:
		return fmt.Errorf("unknown key %q (expected presets, sets, session or swapHistory)", cmd.Key)
	}
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, ctx.Config)
}

func printJSON(ctx *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(data))
	return nil
}
