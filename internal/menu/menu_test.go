package menu

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/psr/pkg/script"
)

type stubKeys struct {
	key    rune
	err    error
	prompt string
}

func (s *stubKeys) PromptKey(msg string) (rune, error) {
	s.prompt = msg
	return s.key, s.err
}

func sampleScripts() []script.Script {
	return []script.Script{
		script.New("start", "node server.js", script.WithShortcut('s')),
		script.New("build", "tsc", script.WithShortcut('b')),
		script.New("hello", "echo hi"),
		script.New("bye", "echo bye"),
	}
}

func manyScripts(n int) []script.Script {
	scripts := make([]script.Script, n)
	for i := range scripts {
		scripts[i] = script.New(fmt.Sprintf("task%d", i+1), fmt.Sprintf("echo %d", i+1))
	}
	return scripts
}

func TestRender_ListsShortcutsThenNumberedScripts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(sampleScripts()).Render(&buf, "/work/app")

	want := "Working directory: /work/app\n" +
		"Available scripts (press key to select):\n" +
		"[s] start (node server.js)\n" +
		"[b] build (tsc)\n" +
		"---\n" +
		"[1] hello (echo hi)\n" +
		"[2] bye (echo bye)\n" +
		"---\n" +
		"[t] Switch to TUI mode\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_ListsOverflow_When_MoreThanNineUnkeyedScripts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(manyScripts(11)).Render(&buf, ".")

	out := buf.String()
	assert.Contains(t, out, "[9] task9 (echo 9)\n")
	assert.NotContains(t, out, "[10]")
	assert.Contains(t, out, "Additional scripts (requires TUI mode):\n    task10 (echo 10)\n    task11 (echo 11)\n")
}

func TestRender_OmitsDividers_When_AllScriptsHaveShortcuts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(sampleScripts()[:2]).Render(&buf, ".")
	assert.NotContains(t, buf.String(), "---")
}

func TestPick(t *testing.T) {
	t.Parallel()

	m := New(sampleScripts())
	tests := []struct {
		name string
		key  rune
		kind Kind
		want string
	}{
		{name: "shortcut", key: 'b', kind: RunScript, want: "build"},
		{name: "number", key: '2', kind: RunScript, want: "bye"},
		{name: "number out of range", key: '3', kind: Quit},
		{name: "zero", key: '0', kind: Quit},
		{name: "tui", key: 't', kind: SwitchToTUI},
		{name: "quit", key: 'q', kind: Quit},
		{name: "escape", key: 0x1b, kind: Quit},
		{name: "unbound", key: 'z', kind: Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.Pick(tt.key)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.want, got.Script.Name)
		})
	}
}

func TestRun_PromptsAndReturnsChoice(t *testing.T) {
	t.Parallel()

	keys := &stubKeys{key: 's'}
	var buf bytes.Buffer
	choice, err := Run(&buf, keys, ".", sampleScripts())

	require.NoError(t, err)
	assert.Equal(t, Prompt, keys.prompt)
	assert.Equal(t, RunScript, choice.Kind)
	assert.Equal(t, "start", choice.Script.Name)
	assert.Contains(t, buf.String(), "[t] Switch to TUI mode")
}

func TestRun_ReturnsError_When_KeyReadFails(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Run(&bytes.Buffer{}, &stubKeys{err: boom}, ".", sampleScripts())
	require.ErrorIs(t, err, boom)
}
