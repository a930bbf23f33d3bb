package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/dkoosis/psr/pkg/script"
)

// IsCommandNotFound reports whether err means the tool is not installed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}

// Run prints a header for label and runs the command with output on the
// terminal. The header color follows the command's script classification.
func Run(label, name string, args ...string) error {
	PrintTask(label, script.Classify(label, name+" "+strings.Join(args, " ")))
	if err := sh.RunV(name, args...); err != nil {
		if IsCommandNotFound(err) {
			return err
		}
		return fmt.Errorf("%s failed (exit %d): %w", label, sh.ExitStatus(err), err)
	}
	return nil
}

// optional treats a missing tool as a warning.
func optional(err error, tool, install string) error {
	if IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: %s)", tool, install))
		return nil
	}
	return err
}
