package system

import (
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	result := ctx.Open().Validate()
	ctx.Println(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found", len(result.Conflicts))
	}
	return nil
}
