package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/kimurataturyu-sys/workout-log/internal/backup"
	"github.com/kimurataturyu-sys/workout-log/internal/config"
	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
	"github.com/kimurataturyu-sys/workout-log/internal/storage"
	"github.com/kimurataturyu-sys/workout-log/internal/tracker"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Out receives command output; nil means stdout
	Out io.Writer
	// AssumeYes skips confirmation prompts
	AssumeYes bool

	tracker *tracker.Tracker
	now     func() time.Time
}

// Open returns the tracker over the already loaded store, creating it on first use
func (c *Context) Open() *tracker.Tracker {
	if c.tracker != nil {
		return c.tracker
	}
	cfg := c.Config
	if cfg == nil {
		cfg = config.Default()
	}
	repo := storage.NewRepository(c.Store, storage.WithReporter(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}))
	c.tracker = tracker.New(repo, cfg)
	if c.now != nil {
		c.tracker.SetClock(c.now)
	}
	return c.tracker
}

// ResetTracker drops the cached tracker so the next Open reloads the store
func (c *Context) ResetTracker() {
	c.tracker = nil
}

// SetClock fixes the time used by commands, for tests
func (c *Context) SetClock(now func() time.Time) {
	c.now = now
	if c.tracker != nil {
		c.tracker.SetClock(now)
	}
}

func (c *Context) Now() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *Context) writer() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer(), format, args...)
}

func (c *Context) Print(args ...interface{}) {
	fmt.Fprint(c.writer(), args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.writer(), args...)
}

// Confirm asks a yes/no question unless AssumeYes is set
func (c *Context) Confirm(title, description string) (bool, error) {
	if c.AssumeYes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// BackupManager returns the backup manager for the configured store
func (c *Context) BackupManager() *backup.Manager {
	return backup.NewManager(c.Store.GetConfigPath(), c.Store.Backend())
}

// PerformAutomaticBackup creates a backup and only logs failures
func (c *Context) PerformAutomaticBackup() {
	if _, err := c.BackupManager().Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDate accepts YYYY-MM-DD, "today", "yesterday" or an empty string (today)
func (c *Context) ParseDate(s string) (string, error) {
	now := c.Now()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.Format(constants.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, 'today' or 'yesterday')", s)
	}
	return s, nil
}

// FormatWeight drops trailing zeros: 100, 102.5, 61.25
func FormatWeight(w float64) string {
	s := fmt.Sprintf("%.2f", w)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
