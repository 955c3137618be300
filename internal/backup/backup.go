// Package backup keeps rotating copies of the store file and converts the
// whole state to and from a versioned export snapshot.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
)

const (
	stampMinute = "20060102-1504"
	stampSecond = "20060102-150405"
)

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, rotates and restores backups of one store file
type Manager struct {
	storePath string
	backend   string
	backupDir string
	suffix    string
	keep      int
	now       func() time.Time
}

// NewManager places backups in a "backups" directory next to the store
func NewManager(storePath, backend string) *Manager {
	suffix := ".db"
	if backend == constants.BackendJSON {
		suffix = ".json"
	}
	return &Manager{
		storePath: storePath,
		backend:   backend,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create writes a new backup and prunes the oldest ones beyond the limit
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	if m.backend == constants.BackendSQLite {
		err = vacuumInto(m.storePath, path)
	} else {
		err = copyFile(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}

	logger.Info("Created backup", "path", path)
	return path, nil
}

// nextPath picks a free file name, widening the timestamp before falling
// back to a counter
func (m *Manager) nextPath() (string, error) {
	now := m.now()
	name := func(stamp string, n int) string {
		if n > 0 {
			stamp = fmt.Sprintf("%s-%d", stamp, n)
		}
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	}

	if p := name(now.Format(stampMinute), 0); !exists(p) {
		return p, nil
	}
	stamp := now.Format(stampSecond)
	for n := 0; n <= 100; n++ {
		if p := name(stamp, n); !exists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// List returns the backups of this backend, newest first
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}
		ts, ok := parseStamp(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix))
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: filepath.Join(m.backupDir, name), Timestamp: ts, Size: fi.Size()})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseStamp reads YYYYMMDD-HHMM or YYYYMMDD-HHMMSS with an optional -N counter
func parseStamp(s string) (time.Time, bool) {
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		s = parts[0] + "-" + parts[1]
	}
	for _, layout := range []string{stampMinute, stampSecond} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store file with a backup. The current store is backed
// up first (without rotation) and its path is returned. The store must be
// closed by the caller.
func (m *Manager) Restore(backupPath string) (string, error) {
	if !exists(backupPath) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety string
	if exists(m.storePath) {
		p, err := m.create()
		if err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
		safety = p
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return "", fmt.Errorf("failed to restore store: %w", err)
	}

	logger.Info("Restored backup", "from", backupPath, "safety", safety)
	return safety, nil
}

func (m *Manager) verify(path string) error {
	if m.backend == constants.BackendJSON {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var values map[string]string
		return json.Unmarshal(data, &values)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("database has no tables")
	}
	return nil
}

// vacuumInto writes a compacted copy of a SQLite database, falling back to
// a plain copy when VACUUM INTO is unavailable
func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
