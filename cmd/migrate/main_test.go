package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDescriptionFromFilename(t *testing.T) {
	tests := map[string]string{
		"2026-01-01-003-create-profiles.sql": "create profiles",
		"2026-02-14-010-add-index.sql":       "add index",
		"notes.sql":                          "notes",
	}
	for in, want := range tests {
		if got := descriptionFromFilename(in); got != want {
			t.Errorf("descriptionFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrationFiles_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2026-01-02-001-b.sql", "2026-01-01-002-a.sql", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := migrationFiles(dir)
	if err != nil {
		t.Fatalf("migrationFiles: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "2026-01-01-002-a.sql" {
		t.Errorf("files = %v", files)
	}
}

func TestMigrationFiles_EmptyDir(t *testing.T) {
	if _, err := migrationFiles(t.TempDir()); err == nil {
		t.Error("expected error for a directory without migrations")
	}
}
