package sessions

import "github.com/kimurataturyu-sys/workout-log/internal/cli"

type SwapCmd struct {
	Candidates SwapCandidatesCmd `cmd:"" help:"Rank replacement exercises." default:"withargs"`
}

type SwapCandidatesCmd struct {
	Exercise string `arg:"" help:"Exercise to replace."`
	Limit    int    `short:"n" help:"Maximum number of candidates." default:"10"`
}

func (c *SwapCandidatesCmd) Run(ctx *cli.Context) error {
	candidates := ctx.Open().Candidates(c.Exercise)
	if len(candidates) == 0 {
		ctx.Println("No candidates found.")
		return nil
	}
	if c.Limit > 0 && len(candidates) > c.Limit {
		candidates = candidates[:c.Limit]
	}
	for i, name := range candidates {
		ctx.Printf("  %d. %s\n", i+1, name)
	}
	return nil
}
