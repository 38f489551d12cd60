package repl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfst/repl"
)

const fixtureSource = `
component greeting: 10 {
    start: 0
    final: 1 0.0
    arc 0 1 1 1 1.0
}
root: 10
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.repg")
	require.NoError(t, os.WriteFile(path, []byte(fixtureSource), 0o644))
	return path
}

func TestStartPrintsStartStateTransitions(t *testing.T) {
	path := writeFixture(t)

	in := strings.NewReader("start\nquit\n")
	var out strings.Builder

	err := repl.Start(in, &out, path, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "--1:1/")
}

func TestStartRejectsNonIntegerInput(t *testing.T) {
	path := writeFixture(t)

	in := strings.NewReader("not-a-state\nquit\n")
	var out strings.Builder

	err := repl.Start(in, &out, path, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "expected a state id")
}

func TestStartReturnsErrorOnBadFile(t *testing.T) {
	err := repl.Start(strings.NewReader(""), &strings.Builder{}, "/nonexistent/path.repg", false)
	assert.Error(t, err)
}
