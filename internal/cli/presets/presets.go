package presets

import (
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/catalog"
	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

type PresetCmd struct {
	Create         PresetCreateCmd         `cmd:"" help:"Create an empty preset."`
	Rename         PresetRenameCmd         `cmd:"" help:"Rename a preset."`
	Delete         PresetDeleteCmd         `cmd:"" help:"Delete a preset."`
	AddExercise    PresetAddExerciseCmd    `cmd:"" name:"add-exercise" help:"Append an exercise to a preset."`
	RemoveExercise PresetRemoveExerciseCmd `cmd:"" name:"remove-exercise" help:"Remove an exercise by position."`
	Move           PresetMoveCmd           `cmd:"" help:"Move an exercise up or down."`
	List           PresetListCmd           `cmd:"" help:"List presets." default:"1"`
	Show           PresetShowCmd           `cmd:"" help:"Show one preset."`
}

type PresetCreateCmd struct {
	Name string `arg:"" help:"Preset name."`
	Tag  string `short:"t" help:"Workout tag, e.g. PUSH."`
}

func (c *PresetCreateCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Open().CreatePreset(c.Name, c.Tag)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Created preset %q (ID: %s)\n", p.Name, p.ID)
	return nil
}

type PresetRenameCmd struct {
	Preset string `arg:"" help:"Preset ID, name or tag."`
	Name   string `arg:"" help:"New name."`
}

func (c *PresetRenameCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open().RenamePreset(c.Preset, c.Name); err != nil {
		return err
	}
	ctx.Printf("✓ Renamed preset to %q\n", c.Name)
	return nil
}

type PresetDeleteCmd struct {
	Preset string `arg:"" help:"Preset ID, name or tag."`
}

func (c *PresetDeleteCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	p, err := tr.Preset(c.Preset)
	if err != nil {
		return err
	}

	desc := fmt.Sprintf("%d exercise(s). Logged sets are kept.", len(p.Exercises))
	if s := tr.Session(); s != nil && s.PresetID == p.ID {
		desc += " The active session started from it will be cleared."
	}
	ok, err := ctx.Confirm(fmt.Sprintf("Delete preset %q?", p.Name), desc)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	cleared, err := tr.DeletePreset(p.ID)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Deleted preset %q\n", p.Name)
	if cleared {
		ctx.Println("  Active session cleared.")
	}
	return nil
}

type PresetAddExerciseCmd struct {
	Preset    string  `arg:"" help:"Preset ID, name or tag."`
	Name      string  `arg:"" help:"Exercise name."`
	RepMin    int     `name:"min" help:"Lower bound of the rep range." required:""`
	RepMax    int     `name:"max" help:"Upper bound of the rep range." required:""`
	Increment float64 `short:"i" help:"Weight added when the rep ceiling is reached (0 uses the configured default)."`
}

func (c *PresetAddExerciseCmd) Run(ctx *cli.Context) error {
	def, err := ctx.Open().AddExercise(c.Preset, c.Name, c.RepMin, c.RepMax, c.Increment)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Added %s (%d-%d reps, +%s)\n", def.Name, def.RepMin, def.RepMax, cli.FormatWeight(def.WeightIncrement))
	return nil
}

type PresetRemoveExerciseCmd struct {
	Preset   string `arg:"" help:"Preset ID, name or tag."`
	Position int    `arg:"" help:"1-based position of the exercise."`
}

func (c *PresetRemoveExerciseCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open().RemoveExercise(c.Preset, c.Position-1); err != nil {
		return err
	}
	ctx.Printf("✓ Removed exercise #%d\n", c.Position)
	return nil
}

type PresetMoveCmd struct {
	Preset    string `arg:"" help:"Preset ID, name or tag."`
	Position  int    `arg:"" help:"1-based position of the exercise."`
	Direction string `arg:"" enum:"up,down" help:"up or down."`
}

func (c *PresetMoveCmd) Run(ctx *cli.Context) error {
	dir, err := catalog.ParseDirection(c.Direction)
	if err != nil {
		return err
	}
	tr := ctx.Open()
	if err := tr.MoveExercise(c.Preset, c.Position-1, dir); err != nil {
		return err
	}
	p, err := tr.Preset(c.Preset)
	if err != nil {
		return err
	}
	printExercises(ctx, p)
	return nil
}

type PresetListCmd struct {
	ShowIDs bool `help:"Show preset IDs." name:"show-ids"`
}

func (c *PresetListCmd) Run(ctx *cli.Context) error {
	presets := ctx.Open().Presets()
	if len(presets) == 0 {
		ctx.Println("No presets found. Create one with 'liftlog preset create' or run 'liftlog init --seed'.")
		return nil
	}

	ctx.Println(cli.HeaderStyle.Render("Presets:"))
	for _, p := range presets {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", p.ID)
		}
		tag := ""
		if p.WorkoutTag != "" {
			tag = "[" + p.WorkoutTag + "] "
		}
		ctx.Printf("  %s%s%s - %d exercise(s)\n", tag, p.Name, idStr, len(p.Exercises))
	}
	return nil
}

type PresetShowCmd struct {
	Preset string `arg:"" help:"Preset ID, name or tag."`
}

func (c *PresetShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Open().Preset(c.Preset)
	if err != nil {
		return err
	}
	printExercises(ctx, p)
	return nil
}

func printExercises(ctx *cli.Context, p models.Preset) {
	ctx.Println(cli.HeaderStyle.Render(p.Name))
	if len(p.Exercises) == 0 {
		ctx.Println(cli.MutedStyle.Render("  (no exercises)"))
		return
	}
	for i, ex := range p.Exercises {
		ctx.Printf("  %d. %s  %d-%d reps  +%s\n", i+1, ex.Name, ex.RepMin, ex.RepMax, cli.FormatWeight(ex.WeightIncrement))
	}
}
