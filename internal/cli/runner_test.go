package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/counter/internal/widget"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("COUNTER_CONFIG", "")
	var out, errOut bytes.Buffer
	code := Run(args, Options{NoColor: true, Stdout: &out, Stderr: &errOut})
	return code, out.String(), errOut.String()
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "render [inc|dec...]")
	assert.Contains(t, out, "data-test")
}

func TestUnknownSubcommand(t *testing.T) {
	code, _, errOut := run(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown subcommand: frobnicate")
	assert.Contains(t, errOut, "Usage:")
}

func TestRunRejectsArgs(t *testing.T) {
	code, _, errOut := run(t, "run", "extra")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: counter run")
}

func TestRenderInitial(t *testing.T) {
	code, out, _ := run(t, "render")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "The counter is currently 0")
	assert.NotContains(t, out, "You cannot go under 0")
}

func TestRenderReplaysClicks(t *testing.T) {
	code, out, _ := run(t, "render", "+", "inc", "increment", "-")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "The counter is currently 2")
}

func TestRenderUnderflow(t *testing.T) {
	code, out, _ := run(t, "render", "dec")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "The counter is currently 0")
	assert.Contains(t, out, "You cannot go under 0")
}

func TestHooksOutline(t *testing.T) {
	code, out, _ := run(t, "hooks", "dec")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], `data-test="component-app"`)
	assert.Contains(t, lines[4], `data-test="decrement-error"`)

	code, out, _ = run(t, "hooks", "dec", "inc")
	require.Equal(t, 0, code)
	assert.NotContains(t, out, widget.HookDecrementError)
	assert.Contains(t, out, "The counter is currently 1")
}

func TestReplayRejectsUnknownClick(t *testing.T) {
	code, out, errOut := run(t, "render", "inc", "sideways")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `"sideways"`)

	_, err := replay([]string{"sideways"})
	assert.ErrorIs(t, err, errUnknownClick)
}

func TestThemeFlagOverridesConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("COUNTER_CONFIG", "")
	var out bytes.Buffer
	code := Run([]string{"render"}, Options{Theme: "mono", Stdout: &out, Stderr: &out})
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out.String(), "+-"), out.String())
}

func TestBadLogLevelFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("COUNTER_CONFIG", "")
	t.Setenv("COUNTER_LOG_LEVEL", "loud")
	var errOut bytes.Buffer
	code := Run([]string{"render"}, Options{Stdout: &bytes.Buffer{}, Stderr: &errOut})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "logging:")
}

func TestHelpIgnoresBrokenConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	p := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(p, []byte("[ui\ntheme = "), 0o644))
	t.Setenv("COUNTER_CONFIG", p)

	var out, errOut bytes.Buffer
	code := Run([]string{"help"}, Options{Stdout: &out, Stderr: &errOut})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage:")
	assert.Empty(t, errOut.String())

	code = Run([]string{"render"}, Options{Stdout: &out, Stderr: &errOut})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "config:")
}
