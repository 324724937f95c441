package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "ufcompare"

// GetXDGDataDir returns the XDG data directory for ufcompare.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/ufcompare
func GetXDGDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appDir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", appDir), nil
}

// ResolveDataPath returns path when it exists or is absolute. A relative path
// missing from the working directory is looked up in the XDG data directory;
// if it is not there either, path is returned unchanged so errors name it.
func ResolveDataPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}

	dir, err := GetXDGDataDir()
	if err != nil {
		return path
	}
	candidate := filepath.Join(dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
