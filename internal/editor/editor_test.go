package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Setenv("EDITOR", "")
	assert.Equal(t, "nano", Resolve(""))
	assert.Equal(t, "vim", Resolve("vim"))

	t.Setenv("EDITOR", "emacs")
	assert.Equal(t, "emacs", Resolve(""), "$EDITOR is used when no override is set")
	assert.Equal(t, "vim", Resolve("vim"), "config override beats $EDITOR")
}

func TestOpen_RunsCommandOnPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "expenses.csv")

	// touch stands in for an editor; it leaves the file behind.
	require.NoError(t, Open("touch", target))

	_, err := os.Stat(target)
	assert.NoError(t, err)
}

func TestOpen_Errors(t *testing.T) {
	assert.Error(t, Open("", "x"))
	assert.Error(t, Open("definitely-not-a-real-editor-binary", "x"))
}
