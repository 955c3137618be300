package sets

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/progress"
	"github.com/kimurataturyu-sys/workout-log/internal/tracker"
)

type SetCmd struct {
	Edit   SetEditCmd   `cmd:"" help:"Edit a logged set."`
	Delete SetDeleteCmd `cmd:"" help:"Delete a logged set."`
}

// SetEditCmd changes only the fields that are passed
type SetEditCmd struct {
	ID       string   `arg:"" help:"Set ID (see 'liftlog history --show-ids')."`
	Exercise *string  `help:"New exercise name."`
	Weight   *float64 `short:"w" help:"New weight."`
	Reps     *int     `short:"r" help:"New reps."`
	Effort   *int     `short:"e" help:"New effort rating (-1 clears it)."`
	Set      *int     `short:"s" help:"New set number."`
	Date     *string  `short:"d" help:"New date."`
}

func (c *SetEditCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	state := tr.State()
	idx := state.FindSet(c.ID)
	if idx < 0 {
		return fmt.Errorf("set %s not found", c.ID)
	}
	cur := state.Sets[idx]

	in := models.SetInput{
		Date:         cur.Date,
		ExerciseName: cur.ExerciseName,
		SetIndex:     cur.SetIndex,
		Weight:       cur.Weight,
		Reps:         cur.Reps,
		EffortRating: cur.EffortRating,
	}
	if c.Exercise != nil {
		in.ExerciseName = *c.Exercise
	}
	if c.Weight != nil {
		in.Weight = *c.Weight
	}
	if c.Reps != nil {
		in.Reps = *c.Reps
	}
	if c.Set != nil {
		in.SetIndex = *c.Set
	}
	if c.Effort != nil {
		in.EffortRating = models.Effort(*c.Effort)
		if *c.Effort == noEffort {
			in.EffortRating = nil
		}
	}
	if c.Date != nil {
		date, err := ctx.ParseDate(*c.Date)
		if err != nil {
			return err
		}
		in.Date = date
	}

	entry, verdict, err := tr.EditSet(c.ID, in)
	if err != nil {
		return err
	}
	printLogged(ctx, entry, verdict)
	return nil
}

type SetDeleteCmd struct {
	ID string `arg:"" help:"Set ID."`
}

func (c *SetDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Confirm("Delete this set?", "This cannot be undone.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}
	removed, err := ctx.Open().DeleteSet(c.ID)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Deleted %s set %d on %s\n", removed.ExerciseName, removed.SetIndex, removed.Date)
	return nil
}

type HistoryCmd struct {
	Exercise string `arg:"" optional:"" help:"Only this exercise."`
	Date     string `short:"d" help:"Only this date."`
	From     string `help:"Earliest date."`
	To       string `help:"Latest date."`
	Limit    int    `short:"n" help:"Maximum number of sets." default:"50"`
	ShowIDs  bool   `help:"Show set IDs." name:"show-ids"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	f := tracker.SetFilter{Exercise: c.Exercise, From: c.From, To: c.To, Limit: c.Limit}
	if c.Date != "" {
		date, err := ctx.ParseDate(c.Date)
		if err != nil {
			return err
		}
		f.Date = date
	}

	entries := ctx.Open().History(f)
	if len(entries) == 0 {
		ctx.Println("No sets found")
		return nil
	}

	day := ""
	for _, e := range entries {
		if e.Date != day {
			day = e.Date
			ctx.Println(cli.HeaderStyle.Render(day))
		}
		effort := ""
		if e.EffortRating != nil {
			effort = fmt.Sprintf("  RIR %d", *e.EffortRating)
		}
		idStr := ""
		if c.ShowIDs {
			idStr = cli.MutedStyle.Render(" (ID: " + e.ID + ")")
		}
		ctx.Printf("  %-24s #%d  %s x %d%s%s\n", e.ExerciseName, e.SetIndex, cli.FormatWeight(e.Weight), e.Reps, effort, idStr)
	}
	return nil
}

type GoalCmd struct {
	Exercises []string `arg:"" optional:"" help:"Exercises (default: the active session's)."`
	Date      string   `short:"d" help:"Date the goal is for." default:"today"`
}

func (c *GoalCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	names := c.Exercises
	if len(names) == 0 {
		s := tr.Session()
		if s == nil {
			return fmt.Errorf("no exercise given and no active session")
		}
		for _, ex := range s.Exercises {
			names = append(names, ex.Name)
		}
	}

	for _, name := range names {
		goal, err := tr.Goal(name, date)
		if err != nil {
			return err
		}
		ctx.Println(cli.RenderGoal(name, goal))
		if goal.Basis != nil {
			ctx.Println(cli.MutedStyle.Render(fmt.Sprintf("    based on %s: %s x %d", goal.Basis.Date, cli.FormatWeight(goal.Basis.Weight), goal.Basis.Reps)))
		}
	}
	return nil
}

type ChartCmd struct {
	Exercise string `arg:"" help:"Exercise to chart."`
	Metric   string `short:"m" help:"Metric: e1rm, weight, reps or volume." default:"e1rm"`
	Mode     string `help:"Series: by-set, daily or both." default:"daily"`
	JSON     bool   `help:"Print the chart data as JSON for an external renderer." name:"json"`
}

func (c *ChartCmd) Run(ctx *cli.Context) error {
	mode, err := progress.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	chart := ctx.Open().Series(c.Exercise, models.ParseMetricKind(c.Metric), mode)

	if c.JSON {
		data, err := json.MarshalIndent(chart, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal chart: %w", err)
		}
		ctx.Println(string(data))
		return nil
	}

	if chart.Empty() {
		ctx.Printf("No sets logged for %s\n", c.Exercise)
		return nil
	}

	header := []string{fmt.Sprintf("%-10s", "date")}
	for _, ds := range chart.Datasets {
		header = append(header, fmt.Sprintf("%12s", truncate(ds.Label, 12)))
	}
	ctx.Println(cli.HeaderStyle.Render(strings.Join(header, " ")))
	for i, label := range chart.Labels {
		row := []string{label}
		for _, ds := range chart.Datasets {
			cell := "-"
			if v := ds.Values[i]; v != nil {
				cell = cli.FormatWeight(*v)
			}
			row = append(row, fmt.Sprintf("%12s", cell))
		}
		ctx.Println(strings.Join(row, " "))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
