// Package editor opens the ledger file in the user's text editor for
// manual edits. The caller reloads the store afterwards.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const fallback = "nano"

// Resolve picks the editor command: the config override first, then
// $EDITOR, then nano.
func Resolve(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return fallback
}

// Open runs the editor on path with the terminal attached and blocks
// until the edit session ends. The command may carry arguments
// ("code -w").
func Open(command, path string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", parts[0], err)
	}
	return nil
}
