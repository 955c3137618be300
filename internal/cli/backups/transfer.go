package backups

import (
	"fmt"
	"io"
	"os"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Open().Export()
	if err != nil {
		return err
	}

	if c.Output == "" {
		ctx.Println(string(data))
		return nil
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.Printf("✓ Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import ('-' for stdin)."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	var (
		data []byte
		err  error
	)
	if c.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	ok, err := ctx.Confirm("Replace all data with this import?", "Presets, sets, the active session and swap history are overwritten.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Import cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	tr := ctx.Open()
	if err := tr.Import(data); err != nil {
		return err
	}
	state := tr.State()
	ctx.Printf("✓ Imported %d presets and %d sets\n", len(state.Presets), len(state.Sets))
	return nil
}
