package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, want: true},
		{name: "wrapped exec.ErrNotFound", err: fmt.Errorf("running: %w", exec.ErrNotFound), want: true},
		{name: "executable file not found", err: errors.New(`exec: "staticcheck": executable file not found in $PATH`), want: true}, //nolint:err113 // Test helper needs dynamic error
		{name: "no such file or directory", err: errors.New("fork/exec ./tool: no such file or directory"), want: true},     //nolint:err113 // Test helper needs dynamic error
		{name: "other error", err: errors.New("exit status 1"), want: false},                                               //nolint:err113 // Test helper needs dynamic error
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}

func TestLDFlags_StampsVersionPackage(t *testing.T) {
	t.Parallel()

	got := LDFlags("v1.2.3", "abc1234", "2026-01-02T03:04:05Z")

	assert.Contains(t, got, "-X 'github.com/dkoosis/psr/internal/version.Version=v1.2.3'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/psr/internal/version.CommitHash=abc1234'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/psr/internal/version.BuildDate=2026-01-02T03:04:05Z'")
}
