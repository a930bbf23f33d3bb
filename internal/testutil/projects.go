// Package testutil builds throwaway project trees for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t testing.TB, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// PackageJSON renders a package.json with the given scripts and
// descriptions.
func PackageJSON(t testing.TB, name string, scripts, descriptions map[string]string) string {
	t.Helper()
	doc := map[string]any{"name": name, "scripts": scripts}
	if len(descriptions) > 0 {
		doc["descriptions"] = descriptions
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	return string(data)
}

// NpmProject creates an npm project whose lint script fails and whose
// error script invokes a missing binary.
func NpmProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "package.json", PackageJSON(t, "npm-test", map[string]string{
		"start": "true",
		"test":  "true",
		"build": "true",
		"lint":  "false",
		"error": "nonexistent-command",
	}, nil))
	WriteFile(t, dir, "package-lock.json", "{}")
	return dir
}

// YarnProject creates a yarn project.
func YarnProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "package.json", PackageJSON(t, "yarn-test", map[string]string{
		"start": "node index.js",
		"test":  "jest",
	}, nil))
	WriteFile(t, dir, "yarn.lock", "")
	return dir
}

// PnpmProject creates a pnpm project with only dev and build scripts.
func PnpmProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "package.json", PackageJSON(t, "pnpm-test", map[string]string{
		"dev":   "vite",
		"build": "vite build",
	}, nil))
	WriteFile(t, dir, "pnpm-lock.yaml", "")
	return dir
}

// CargoProject creates a cargo project with metadata scripts and a binary.
func CargoProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "Cargo.toml", `
[package]
name = "rust-test"
version = "0.1.0"

[package.metadata.scripts]
dev = "cargo watch -x run"
docs = "cargo doc --open"

[[bin]]
name = "worker"
path = "src/bin/worker.rs"
`)
	return dir
}

// PoetryProject creates a poetry project with ruff and pytest declared.
func PoetryProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "pyproject.toml", `
[tool.poetry]
name = "poetry-test"
version = "0.1.0"

[tool.poetry.dependencies]
python = "^3.9"
requests = "^2.31.0"

[tool.poetry.dev-dependencies]
pytest = "^7.4.0"
ruff = "^0.1.0"

[tool.poetry.scripts]
serve = "poetry_test.app:main"
`)
	return dir
}

// UvProject creates a uv project configured through uv.toml.
func UvProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "uv.toml", `
[dependencies]
flake8 = "*"
`)
	return dir
}

// PipProject creates a pip project with ruff in requirements.txt.
func PipProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "requirements.txt", "requests==2.31.0\nruff==0.1.0\npytest==7.4.0\n")
	return dir
}

// GoProject creates a Go module with a Makefile and a magefile.
func GoProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "go.mod", "module example.com/gotest\n\ngo 1.24\n")
	WriteFile(t, dir, "Makefile", ".PHONY: all\nall: build\n\nbuild:\n\tgo build ./...\n\nVERSION := 1.0\nrelease: build\n\t./release.sh\n")
	WriteFile(t, dir, "magefile.go", `//go:build mage

package main

// Build compiles the binary.
func Build() error { return nil }

// Ci runs the full pipeline.
func Ci() error { return nil }

func helper() {}
`)
	return dir
}
