package magetasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/dkoosis/psr/pkg/script"
)

// LintAll runs every linter and reports all failures together. Linters
// that are not installed only warn.
func LintAll() error {
	PrintH2Header("Lint")
	err := errors.Join(LintFormat(), LintVet(), LintStaticcheck(), LintGolangci())
	if err != nil {
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when any file needs gofmt.
func LintFormat() error {
	PrintTask("format check", script.Format)
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if files := strings.TrimSpace(out); files != "" {
		return fmt.Errorf("files need gofmt:\n%s", files)
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return Run("go vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck when installed.
func LintStaticcheck() error {
	return optional(Run("staticcheck", "staticcheck", "./..."),
		"staticcheck", "go install honnef.co/go/tools/cmd/staticcheck@latest")
}

// LintGolangci runs golangci-lint when installed.
func LintGolangci() error {
	return optional(Run("golangci-lint", "golangci-lint", "run", "--timeout=5m", "./..."),
		"golangci-lint", "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional(Run("golangci-lint fix", "golangci-lint", "run", "--fix", "--timeout=5m", "./..."),
		"golangci-lint", "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest")
}
