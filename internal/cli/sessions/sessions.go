package sessions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/models"
	"github.com/kimurataturyu-sys/workout-log/internal/tracker"
)

type SessionCmd struct {
	Start  SessionStartCmd  `cmd:"" help:"Start a session from a preset."`
	Add    SessionAddCmd    `cmd:"" help:"Add an ad-hoc exercise to the active session."`
	Swap   SessionSwapCmd   `cmd:"" help:"Swap an exercise in the active session."`
	Finish SessionFinishCmd `cmd:"" help:"Finish the active session."`
	Cancel SessionCancelCmd `cmd:"" help:"Cancel the active session and discard its sets."`
	Show   SessionShowCmd   `cmd:"" help:"Show the active session with goals." default:"1"`
}

type SessionStartCmd struct {
	Preset string `arg:"" help:"Preset ID, name or tag."`
	Date   string `short:"d" help:"Session date (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *SessionStartCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}
	tr := ctx.Open()
	s, err := tr.StartSession(c.Preset, date)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Started %s session for %s\n", sessionLabel(s), s.Date)
	printSession(ctx, s)
	return nil
}

type SessionAddCmd struct {
	Name string `arg:"" help:"Exercise name."`
}

func (c *SessionAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open().AddAdHocExercise(c.Name); err != nil {
		return err
	}
	ctx.Printf("✓ Added %s to the session\n", strings.TrimSpace(c.Name))
	return nil
}

type SessionSwapCmd struct {
	Position int    `arg:"" help:"1-based position of the exercise to replace."`
	To       string `arg:"" optional:"" help:"Replacement exercise. Omit to pick from ranked candidates."`
}

func (c *SessionSwapCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	s := tr.Session()
	if s == nil {
		_, err := tr.Substitute(c.Position-1, c.To)
		return err
	}

	to := c.To
	if to == "" {
		if c.Position < 1 || c.Position > len(s.Exercises) {
			return fmt.Errorf("no exercise at position %d", c.Position)
		}
		picked, err := pickCandidate(tr.Candidates(s.Exercises[c.Position-1].Name))
		if err != nil {
			return err
		}
		to = picked
	}

	sub, err := tr.Substitute(c.Position-1, to)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Swapped %s → %s\n", sub.From, sub.To)
	return nil
}

func pickCandidate(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidates known yet, pass the replacement name")
	}
	var choice string
	options := make([]huh.Option[string], 0, len(candidates))
	for _, name := range candidates {
		options = append(options, huh.NewOption(name, name))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Replace with").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("interactive form error: %w", err)
	}
	return choice, nil
}

type SessionFinishCmd struct{}

func (c *SessionFinishCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	s, err := tr.FinishSession()
	if err != nil {
		return err
	}
	logged := 0
	for _, e := range tr.History(tracker.SetFilter{Date: s.Date}) {
		if e.SessionID == s.ID {
			logged++
		}
	}
	ctx.Printf("✓ Finished %s session (%d set(s) logged)\n", sessionLabel(s), logged)
	return nil
}

type SessionCancelCmd struct{}

func (c *SessionCancelCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	s := tr.Session()
	if s != nil {
		ok, err := ctx.Confirm("Cancel the active session?", "Sets logged during this session will be discarded.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Session kept.")
			return nil
		}
	}
	n, err := tr.CancelSession()
	if err != nil {
		return err
	}
	ctx.Printf("✓ Session cancelled, %d set(s) discarded\n", n)
	return nil
}

type SessionShowCmd struct{}

func (c *SessionShowCmd) Run(ctx *cli.Context) error {
	tr := ctx.Open()
	s := tr.Session()
	if s == nil {
		ctx.Println("No active session. Start one with 'liftlog session start <preset>'.")
		return nil
	}
	ctx.Println(cli.HeaderStyle.Render(fmt.Sprintf("%s session, %s", sessionLabel(s), s.Date)))
	for i, ex := range s.Exercises {
		goal, err := tr.Goal(ex.Name, s.Date)
		if err != nil {
			return err
		}
		done := tr.NextSetIndex(s.Date, ex.Name) - 1
		ctx.Printf("  %d. %s  (%d set(s) done)\n", i+1, cli.RenderGoal(ex.Name, goal), done)
	}
	for _, sub := range s.Substitutions {
		ctx.Println(cli.MutedStyle.Render(fmt.Sprintf("  swapped %s → %s", sub.From, sub.To)))
	}
	return nil
}

func printSession(ctx *cli.Context, s *models.Session) {
	for i, ex := range s.Exercises {
		ctx.Printf("  %d. %s  %d-%d reps\n", i+1, ex.Name, ex.RepMin, ex.RepMax)
	}
}

func sessionLabel(s *models.Session) string {
	if s.WorkoutTag != "" {
		return s.WorkoutTag
	}
	return "ad-hoc"
}
