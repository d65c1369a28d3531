package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker-dev/budget-tracker/internal/ledger"
)

func runCommand(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(in))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func ledgerContents(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "expenses.csv"))
	require.NoError(t, err)
	return string(data)
}

func TestAdd_Flags(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "",
		"add", "--data", dir,
		"--date", "2024-01-05",
		"--description", "Lunch",
		"--category", "food",
		"--amount", "-1200",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Added -1200")

	contents := ledgerContents(t, dir)
	assert.Contains(t, contents, ledger.Header)
	assert.Contains(t, contents, "2024-01-05,Lunch,Food,-1200", "category capitalized on add")
}

func TestAdd_FlagsInvalidAmount(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "",
		"add", "--data", dir,
		"--date", "2024-01-05",
		"--amount", "tuppence",
	)
	require.Error(t, err)

	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)

	// Nothing reached the ledger.
	_, statErr := os.Stat(filepath.Join(dir, "expenses.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAdd_InteractivePrompts(t *testing.T) {
	dir := t.TempDir()

	// Bad date, then a good one; description; category; bad amount, then
	// a good one.
	in := "01/02/2024x\n2024-02-01\nMovie\nfun\nlots\n-1500\n"
	out, err := runCommand(t, in, "add", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid date")
	assert.Contains(t, out, "Invalid amount")
	assert.Contains(t, out, "Food, Travel, Fun", "suggested categories are shown")

	contents := ledgerContents(t, dir)
	assert.Contains(t, contents, "2024-02-01,Movie,Fun,-1500")
}

func TestAdd_InteractiveSlashDate(t *testing.T) {
	dir := t.TempDir()

	in := "2024/02/01\nMovie\nFun\n-1500\n"
	_, err := runCommand(t, in, "add", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, ledgerContents(t, dir), "2024-02-01,Movie,Fun,-1500", "slash dates are stored in ISO form")
}

func TestAdd_AppendsInOrder(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "", "add", "--data", dir, "--date", "2024-03-01", "--description", "b", "--amount", "-1")
	require.NoError(t, err)
	_, err = runCommand(t, "", "add", "--data", dir, "--date", "2024-01-01", "--description", "a", "--amount", "-2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(ledgerContents(t, dir)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], ",b,")
	assert.Contains(t, lines[2], ",a,", "file keeps insertion order, not date order")
}
