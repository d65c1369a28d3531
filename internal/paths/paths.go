// Package paths resolves the data directory and the files inside it.
// The default location is ~/.local/share/budget-tracker, honoring
// XDG_DATA_HOME when set.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "budget-tracker"

// ConfigFile is the name of the config file inside the data directory.
const ConfigFile = "budget.yaml"

// DataDir returns the data directory without creating it.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDir), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return dir, nil
}
