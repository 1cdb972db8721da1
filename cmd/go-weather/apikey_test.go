package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAPIKeyPath(t *testing.T) {
	if got := apiKeyPath([]string{"go-weather", "key.txt"}, "configured.txt"); got != "key.txt" {
		t.Errorf("expected the argument to win, got %s", got)
	}
	if got := apiKeyPath([]string{"go-weather"}, "configured.txt"); got != "configured.txt" {
		t.Errorf("expected the configured path, got %s", got)
	}
}

func TestLoadAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(path, []byte("  abc123\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := loadAPIKey(path); got != "abc123" {
		t.Errorf("expected trimmed key, got %q", got)
	}
	if got := loadAPIKey(filepath.Join(t.TempDir(), "missing.txt")); got != "" {
		t.Errorf("expected empty key for a missing file, got %q", got)
	}
	if got := loadAPIKey(""); got != "" {
		t.Errorf("expected empty key without a path, got %q", got)
	}
}
