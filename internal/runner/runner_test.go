//go:build unix

package runner

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/psr/internal/detect"
	"github.com/dkoosis/psr/pkg/script"
)

func newTestRunner(stdout, stderr *bytes.Buffer) *Runner {
	r := New(nil)
	r.Stdin = strings.NewReader("")
	r.Stdout = stdout
	r.Stderr = stderr
	return r
}

func TestRun_ReturnsZero_When_CommandSucceeds(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code, err := newTestRunner(&stdout, &stderr).Run(script.New("hello", "printf hello"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello", stdout.String())
}

func TestRun_ReturnsExitCode_When_CommandFails(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	code, err := r.Run(script.New("lint", "false"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	code, err = r.Run(script.New("boom", "printf oops >&2; exit 3"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "oops", stderr.String())

	code, err = r.Run(script.New("error", "nonexistent-command-psr"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 127, code)
}

func TestRun_ReportsSignal_When_ChildIsKilled(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code, err := newTestRunner(&stdout, &stderr).Run(script.New("die", "kill -9 $$"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, -1, code)
}

func TestRun_RunsInProjectDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	_, err := newTestRunner(&stdout, &stderr).Run(script.New("where", "pwd -P"), dir)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(stdout.String()))
}

func TestRun_ReturnsError_When_ShellCannotStart(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	_, err := newTestRunner(&stdout, &stderr).Run(script.New("x", "true"), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRunManaged_FallsBackToShell_When_ManagerMissing(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)
	r.LookPath = func(string) (string, error) { return "", errors.New("not found") }

	m := detect.Manager{Kind: detect.Npm, Dir: t.TempDir()}
	code, err := r.RunManaged(m, script.New("greet", "printf '%s|'"), []string{"a b", "c"}, []string{"NODE_ENV=development"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a b|c|", stdout.String())
}

func TestRunManaged_PassesEnvironment(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	m := detect.Manager{Kind: detect.Go, Dir: t.TempDir()}
	code, err := r.RunManaged(m, script.New("env", "printf \"$PSR_TEST_VALUE\""), nil, []string{"PSR_TEST_VALUE=42"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "42", stdout.String())
}
