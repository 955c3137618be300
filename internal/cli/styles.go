package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/kimurataturyu-sys/workout-log/internal/progression"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// StatusStyle colours a goal status
func StatusStyle(s progression.Status) lipgloss.Style {
	switch s {
	case progression.StatusReadyToProgress:
		return progressStyle
	case progression.StatusOnTrack:
		return okStyle
	case progression.StatusCaution:
		return warnStyle
	default:
		return MutedStyle
	}
}

// VerdictStyle colours a set verdict
func VerdictStyle(k progression.VerdictKind) lipgloss.Style {
	switch k {
	case progression.VerdictOverreaching, progression.VerdictRegression:
		return dangerStyle
	case progression.VerdictEffortOffTarget:
		return warnStyle
	case progression.VerdictCeilingMet:
		return progressStyle
	default:
		return okStyle
	}
}

// RenderGoal formats a goal on one line
func RenderGoal(exercise string, g progression.Goal) string {
	label := StatusStyle(g.Status).Render("[" + g.Status.String() + "]")
	if !g.HasTarget {
		return exercise + " " + label + " " + g.Message
	}
	return exercise + " " + label + " " + FormatWeight(g.Weight) + " x " + strconv.Itoa(g.Reps) + "  " + MutedStyle.Render(g.Message)
}

// RenderVerdict formats a verdict on one line
func RenderVerdict(v progression.Verdict) string {
	return VerdictStyle(v.Kind).Render(v.Message)
}
