package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the XDG data directory for fairctl.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/fairctl
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "fairctl"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "fairctl"), nil
}

// StateDir returns the XDG state directory for fairctl. The stored session
// lives here, so it survives upgrades but stays out of the data directory.
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "fairctl"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "state", "fairctl"), nil
}
