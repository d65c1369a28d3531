package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker-dev/budget-tracker/internal/ledger"
)

func TestEdit_ValidatesAfterSession(t *testing.T) {
	t.Setenv("EDITOR", "true") // an editor that changes nothing
	dir := t.TempDir()
	writeLedger(t, dir, "2024-01-05,Lunch,Food,-1200")

	out, err := runCommand(t, "", "edit", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Ledger OK: 1 transactions")
}

func TestEdit_ReportsBrokenFile(t *testing.T) {
	t.Setenv("EDITOR", "true")
	dir := t.TempDir()
	writeLedger(t, dir, "2024-01-05,Lunch,Food,notanumber")

	_, err := runCommand(t, "", "edit", "--data", dir)
	require.Error(t, err)

	var perr *ledger.ParseError
	assert.ErrorAs(t, err, &perr)
}
