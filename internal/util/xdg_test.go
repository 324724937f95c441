package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetXDGDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := GetXDGDataDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/xdg/ufcompare" {
		t.Errorf("expected /tmp/xdg/ufcompare, got %s", dir)
	}
}

func TestResolveDataPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	if err := os.MkdirAll(filepath.Join(xdg, "ufcompare"), 0o755); err != nil {
		t.Fatal(err)
	}
	inXDG := filepath.Join(xdg, "ufcompare", "only-in-xdg.csv")
	if err := os.WriteFile(inXDG, []byte("name\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	abs := filepath.Join(t.TempDir(), "missing.csv")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"empty", "", ""},
		{"absolute is kept even when missing", abs, abs},
		{"relative found in XDG dir", "only-in-xdg.csv", inXDG},
		{"relative missing everywhere", "nowhere.csv", "nowhere.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDataPath(tt.path); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
