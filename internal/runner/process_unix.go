//go:build unix

package runner

import (
	"os"
	"os/exec"
	"syscall"
)

// getExitCodeFromError extracts the exit code from an exec.ExitError.
// A child killed by a signal reports -1.
func getExitCodeFromError(exitErr *exec.ExitError) (int, bool) {
	waitStatus, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return 0, false
	}
	if waitStatus.Signaled() {
		return -1, true
	}
	return waitStatus.ExitStatus(), true
}

// getInterruptSignals returns the terminal signals psr ignores while a child
// runs. The child gets them straight from the terminal.
func getInterruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGQUIT}
}
