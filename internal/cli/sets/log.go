package sets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/metric"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/progression"
)

// noEffort marks an effort rating that was not given
const noEffort = -1

type LogCmd struct {
	Exercise    string  `arg:"" optional:"" help:"Exercise name."`
	Weight      float64 `short:"w" help:"Weight lifted."`
	Reps        int     `short:"r" help:"Reps completed."`
	Effort      int     `short:"e" help:"Effort rating as reps in reserve (0 = failure). Omit to skip." default:"-1"`
	Set         int     `short:"s" help:"Set number (0 = next free number)."`
	Date        string  `short:"d" help:"Date (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Interactive bool    `short:"I" help:"Fill in the set with a form."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	if c.Interactive {
		if err := c.fillInteractive(ctx, date); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Exercise) == "" {
		return fmt.Errorf("exercise name is required (or use --interactive)")
	}

	in := models.SetInput{
		Date:         date,
		ExerciseName: c.Exercise,
		SetIndex:     c.Set,
		Weight:       c.Weight,
		Reps:         c.Reps,
	}
	if c.Effort != noEffort {
		in.EffortRating = models.Effort(c.Effort)
	}

	entry, verdict, err := ctx.Open().LogSet(in)
	if err != nil {
		return err
	}
	printLogged(ctx, entry, verdict)
	return nil
}

func printLogged(ctx *cli.Context, entry models.SetEntry, verdict progression.Verdict) {
	ctx.Printf("✓ Logged %s set %d: %s x %d (e1RM %s)\n",
		entry.ExerciseName, entry.SetIndex, cli.FormatWeight(entry.Weight), entry.Reps,
		cli.FormatWeight(metric.EstimatedOneRepMax(entry.Weight, entry.Reps)))
	ctx.Printf("  %s\n", cli.RenderVerdict(verdict))
}

// fillInteractive asks for every field not given on the command line
func (c *LogCmd) fillInteractive(ctx *cli.Context, date string) error {
	tr := ctx.Open()

	if c.Exercise == "" {
		names := tr.KnownExerciseNames()
		if len(names) > 0 {
			options := make([]huh.Option[string], 0, len(names)+1)
			for _, n := range names {
				options = append(options, huh.NewOption(n, n))
			}
			options = append(options, huh.NewOption("Other…", ""))
			form := huh.NewForm(huh.NewGroup(
				huh.NewSelect[string]().
					Title("Exercise").
					Options(options...).
					Value(&c.Exercise),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("interactive form error: %w", err)
			}
		}
	}

	exercise := c.Exercise
	var weight, reps, effort string
	if c.Weight > 0 {
		weight = cli.FormatWeight(c.Weight)
	}
	if c.Reps > 0 {
		reps = strconv.Itoa(c.Reps)
	}
	if c.Effort != noEffort {
		effort = strconv.Itoa(c.Effort)
	}

	hint := ""
	if exercise != "" {
		if goal, err := tr.Goal(exercise, date); err == nil {
			hint = cli.RenderGoal(exercise, goal)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Value(&exercise).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("exercise name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Weight").
				Description(hint).
				Value(&weight).
				Validate(validateNumber(0, 0)),
			huh.NewInput().
				Title("Reps").
				Value(&reps).
				Validate(validateInt(0, 0)),
			huh.NewInput().
				Title("Effort (reps in reserve, blank to skip)").
				Value(&effort).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validateInt(0, constants.EffortMax)(s)
				}),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	c.Exercise = strings.TrimSpace(exercise)
	c.Weight, _ = strconv.ParseFloat(strings.TrimSpace(weight), 64)
	c.Reps, _ = strconv.Atoi(strings.TrimSpace(reps))
	c.Effort = noEffort
	if strings.TrimSpace(effort) != "" {
		c.Effort, _ = strconv.Atoi(strings.TrimSpace(effort))
	}
	return nil
}

// validateNumber requires a number >= min (and <= max when max > 0)
func validateNumber(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || !models.IsFinite(v) {
			return fmt.Errorf("enter a number")
		}
		return checkRange(v, min, max)
	}
}

func validateInt(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		return checkRange(float64(v), float64(min), float64(max))
	}
}

// checkRange applies min, and max only when it is positive
func checkRange(v, min, max float64) error {
	if max > 0 && (v < min || v > max) {
		return fmt.Errorf("must be between %s and %s", cli.FormatWeight(min), cli.FormatWeight(max))
	}
	if v < min {
		return fmt.Errorf("must be at least %s", cli.FormatWeight(min))
	}
	return nil
}
