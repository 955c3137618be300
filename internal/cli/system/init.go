package system

import (
	"fmt"
	"os"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing store before initialization."`
	Seed  bool `help:"Install the starter PUSH/PULL/LEGS presets."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.ResetTracker()
			ctx.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized %s storage at: %s\n", ctx.Store.Backend(), ctx.Store.GetConfigPath())

	if c.Seed {
		added, err := ctx.Open().SeedStarterPresets()
		if err != nil {
			return fmt.Errorf("failed to install starter presets: %w", err)
		}
		if added == 0 {
			ctx.Println("Starter presets already present")
		} else {
			ctx.Printf("Installed %d starter presets\n", added)
		}
	}
	return nil
}
