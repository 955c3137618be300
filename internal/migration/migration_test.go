package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestGetCurrentVersion_FreshDatabase(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(nil))

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"003_another.sql": "CREATE TABLE test2 (id INTEGER);",
		"001_init.sql":    "CREATE TABLE test1 (id INTEGER);",
		"002_update.sql":  "ALTER TABLE test1 ADD COLUMN name TEXT;",
		"README.md":       "ignored",
	}))

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, want := range []string{"init", "update", "another"} {
		if migrations[i].Version != i+1 || migrations[i].Name != want {
			t.Errorf("migration %d: got version %d name %q", i, migrations[i].Version, migrations[i].Name)
		}
	}
}

func TestReadMigrationFiles_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"no underscore", map[string]string{"001.sql": "SELECT 1;"}},
		{"non-numeric", map[string]string{"abc_init.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}},
		{"duplicate", map[string]string{"001_a.sql": "SELECT 1;", "001_b.sql": "SELECT 1;"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), migrationFS(tt.files))
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":  "CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT);",
		"002_index.sql": "CREATE INDEX idx_kv_value ON kv(value);",
	}))

	var logs []string
	applied, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}
	if len(logs) != 2 || !strings.Contains(logs[0], "init") {
		t.Errorf("unexpected log lines: %v", logs)
	}

	version, _ := runner.GetCurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// Second run is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied on rerun, got %d", applied)
	}
}

func TestApplyMigrations_FailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":   "CREATE TABLE kv (key TEXT PRIMARY KEY);",
		"002_broken.sql": "THIS IS NOT SQL;",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied before failure, got %d", applied)
	}
	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("expected version to stay at 1, got %d", version)
	}
}

func TestValidateVersion_NewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE kv (key TEXT PRIMARY KEY);",
	}))
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 9"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ErrSchemaTooNew, got %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ApplyMigrations to refuse a newer schema, got %v", err)
	}
}

func TestPending(t *testing.T) {
	db := setupTestDB(t)
	files := map[string]string{
		"001_init.sql": "CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT);",
	}
	if _, err := NewRunner(db, migrationFS(files)).ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}

	files["002_index.sql"] = "CREATE INDEX idx_kv_value ON kv(value);"
	files["003_meta.sql"] = "CREATE TABLE meta (k TEXT);"
	runner := NewRunner(db, migrationFS(files))

	pending, err := runner.Pending()
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 2 || pending[0].Version != 2 || pending[1].Name != "meta" {
		t.Errorf("unexpected pending migrations: %+v", pending)
	}
}
