// Package swap remembers exercise substitutions and ranks replacement candidates.
package swap

import (
	"sort"
	"strings"

	"github.com/kimurataturyu-sys/workout-log/internal/models"
)

// Record front-inserts {from,to}, drops any older copy of the same pair and
// trims the history to limit entries.
func Record(history []models.SwapEntry, from, to string, limit int) []models.SwapEntry {
	entry := models.SwapEntry{From: from, To: to}
	out := make([]models.SwapEntry, 0, len(history)+1)
	out = append(out, entry)
	for _, h := range history {
		if h == entry {
			continue
		}
		out = append(out, h)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Candidates ranks replacement exercises for fromName. Earlier destinations
// from the same source come first, newest first; every other known name
// follows alphabetically. fromName itself is never returned.
func Candidates(fromName string, presetNames, loggedNames []string, history []models.SwapEntry) []string {
	seen := map[string]bool{fromName: true}
	var result []string

	for _, h := range history {
		if h.From != fromName {
			continue
		}
		name := strings.TrimSpace(h.To)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}

	var rest []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		rest = append(rest, name)
	}
	for _, n := range presetNames {
		add(n)
	}
	for _, n := range loggedNames {
		add(n)
	}
	for _, h := range history {
		add(h.From)
		add(h.To)
	}
	sort.Strings(rest)

	return append(result, rest...)
}
