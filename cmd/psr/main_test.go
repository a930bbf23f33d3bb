package main

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/psr/internal/testutil"
	"github.com/dkoosis/psr/pkg/script"
)

// runPSR invokes run with an isolated config file.
func runPSR(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("PSR_CONFIG", filepath.Join(t.TempDir(), "psr.yaml"))
	t.Setenv("PSR_DEBUG", "")
	t.Setenv("PSR_LOG_FILE", "")
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture scripts use POSIX shell commands")
	}
}

func TestJTBD_ListScripts(t *testing.T) {
	dir := testutil.NpmProject(t)

	code, out, _ := runPSR(t, "--list", "-d", dir)

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Available scripts:\n"))
	for _, name := range []string{"start", "test", "build", "lint"} {
		assert.Contains(t, out, "  "+name+" - ")
	}
}

func TestJTBD_ListShowsDescriptions(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "package.json", testutil.PackageJSON(t, "described",
		map[string]string{"start": "node ."},
		map[string]string{"start": "Start the server"}))
	testutil.WriteFile(t, dir, "package-lock.json", "{}")

	code, out, _ := runPSR(t, "-l", "-d", dir)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "  start - node .\n    Description: Start the server\n")
}

func TestJTBD_RunFailingScript_PropagatesExitCode(t *testing.T) {
	skipOnWindows(t)
	dir := testutil.NpmProject(t)

	code, _, _ := runPSR(t, "-d", dir, "lint")

	assert.Equal(t, 1, code)
}

func TestJTBD_RunPassingScript_ExitsZero(t *testing.T) {
	skipOnWindows(t)
	dir := testutil.NpmProject(t)

	code, _, stderr := runPSR(t, "-d", dir, "run", "build")

	assert.Equal(t, 0, code, stderr)
}

func TestJTBD_RunWithoutName_Fails_When_NoRunScript(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "package.json", testutil.PackageJSON(t, "norun",
		map[string]string{"test": "true", "lint": "false"}, nil))
	testutil.WriteFile(t, dir, "package-lock.json", "{}")

	code, _, stderr := runPSR(t, "-d", dir, "run")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "No script name provided and no 'run' script found")
}

func TestJTBD_DirectExecution_ReportsErrors(t *testing.T) {
	dir := testutil.NpmProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown script", args: []string{"run", "missing"}, want: "Script 'missing' not found"},
		{name: "special without match", args: []string{"deploy"}, want: "Script 'deploy' not found"},
		{name: "special with name", args: []string{"test", "unit"}, want: "Cannot specify script name with special command 'test'"},
		{name: "unknown command", args: []string{"frobnicate"}, want: "Unknown command 'frobnicate'. Use 'run <script>' for custom scripts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runPSR(t, append([]string{"-d", dir}, tt.args...)...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestJTBD_NoScripts_ExitsZero(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "package.json", `{"name":"empty"}`)
	testutil.WriteFile(t, dir, "package-lock.json", "{}")

	code, out, _ := runPSR(t, "-d", dir, "--list")

	assert.Equal(t, 0, code)
	assert.Equal(t, "No scripts found\n", out)
}

func TestJTBD_NoProject_ExitsOne(t *testing.T) {
	code, _, stderr := runPSR(t, "-d", t.TempDir(), "--list")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "psr: could not detect package manager")
}

func TestRun_ExitsTwo_When_FlagIsUnknown(t *testing.T) {
	code, _, stderr := runPSR(t, "--bogus")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown flag")
}

func TestRun_ExitsTwo_When_ThemeIsUnknown(t *testing.T) {
	code, _, _ := runPSR(t, "--theme", "sepia", "-d", testutil.NpmProject(t), "--list")

	assert.Equal(t, 2, code)
}

func TestRun_PrintsVersion(t *testing.T) {
	code, out, _ := runPSR(t, "--version")

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "psr version "))
}

func TestJTBD_ManageProjects(t *testing.T) {
	t.Setenv("PSR_CONFIG", filepath.Join(t.TempDir(), "psr.yaml"))
	t.Setenv("PSR_DEBUG", "")
	t.Setenv("PSR_LOG_FILE", "")
	web := testutil.NpmProject(t)
	crate := testutil.CargoProject(t)

	psr := func(args ...string) (int, string, string) {
		var stdout, stderr bytes.Buffer
		code := run(args, strings.NewReader(""), &stdout, &stderr)
		return code, stdout.String(), stderr.String()
	}

	code, out, _ := psr("projects", "add", "web", web)
	require.Equal(t, 0, code)
	assert.Equal(t, "Added project 'web' at '"+web+"'\n", out)

	code, _, _ = psr("projects", "add", "crate", crate)
	require.Equal(t, 0, code)

	code, _, stderr := psr("projects", "add", "web", crate)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")

	code, _, _ = psr("projects", "rename", "crate", "rust")
	require.Equal(t, 0, code)

	code, out, _ = psr("projects", "list")
	require.Equal(t, 0, code)
	assert.Equal(t, "Saved projects:\n  web -> "+web+"\n  rust -> "+crate+"\n", out)

	code, out, _ = psr("-p", "web", "--list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "  lint - false")

	code, out, _ = psr("projects", "remove", "rust")
	require.Equal(t, 0, code)
	assert.Equal(t, "Removed project 'rust'\n", out)

	code, _, stderr = psr("-p", "rust", "--list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Project 'rust' not found")

	code, _, _ = psr("projects", "add")
	assert.Equal(t, 2, code)
}

func TestPickScript_ResolvesSynonymsAndArgs(t *testing.T) {
	t.Parallel()

	scripts := []script.Script{
		script.New("dev", "vite"),
		script.New("test:unit", "vitest run"),
		script.New("hello", "echo hi"),
	}

	name, args, err := pickScript(scripts, "start", nil)
	require.NoError(t, err)
	assert.Equal(t, "dev", name)
	assert.Empty(t, args)

	name, args, err = pickScript(scripts, "test", []string{"--", "--watch"})
	require.NoError(t, err)
	assert.Equal(t, "test:unit", name)
	assert.Equal(t, []string{"--watch"}, args)

	name, args, err = pickScript(scripts, "run", []string{"hello", "world"})
	require.NoError(t, err)
	assert.Equal(t, "hello", name)
	assert.Equal(t, []string{"world"}, args)

	_, _, err = pickScript(scripts, "run", []string{"nope"})
	require.ErrorIs(t, err, script.ErrNotFound)
}

func TestPickScript_ReturnsNotFound_When_BareRunHasNoRunScript(t *testing.T) {
	t.Parallel()

	scripts := []script.Script{script.New("hello", "echo hi")}

	_, _, err := pickScript(scripts, "run", nil)
	require.ErrorIs(t, err, script.ErrNotFound)
	assert.EqualError(t, err, "No script name provided and no 'run' script found")
}
