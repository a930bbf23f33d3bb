//go:build !unix

package runner

import (
	"os"
	"os/exec"
)

// getExitCodeFromError extracts the exit code from an exec.ExitError on non-Unix platforms.
func getExitCodeFromError(exitErr *exec.ExitError) (int, bool) {
	if exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode(), true
	}
	return 0, false
}

func getInterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
