package embedcli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_NoArgsListsEveryBinding(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ledBindings(t, h.e)
	h.out.Reset()
	h.send("help\r")

	out := h.out.String()
	assert.Contains(t, out, " * help")
	assert.Contains(t, out, " * get-led")
	assert.Contains(t, out, " * get-adc")
	assert.Contains(t, out, " * set")
}

func TestHelp_OneArgPrintsItsHelpText(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ledBindings(t, h.e)
	h.out.Reset()
	h.send("help get-led\r")
	assert.Contains(t, h.out.String(), "report LED state")
}

func TestHelp_OneArgUnknownBindingReportsUnknownCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.out.Reset()
	h.send("help nope\r")
	assert.Contains(t, h.out.String(), `Unknown command: "nope"`)
}

func TestHelp_OneArgWithoutHelpTextReportsUnavailable(t *testing.T) {
	t.Parallel()

	e, err := New(Config{})
	require.NoError(t, err)
	var out strings.Builder
	e.cfg.WriteChar = func(_ *Engine, b byte) { out.WriteByte(b) }
	require.True(t, e.AddBinding(Binding{Name: "silent", Handler: func(any, string) int { return 0 }}))

	result := e.handleHelp(nil, "silent\x00\x00")
	assert.Equal(t, 1, result)
	assert.Contains(t, out.String(), "Help is not available")
}

func TestHelp_TooManyArgsReportsUsage(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.out.Reset()
	h.send("help a b\r")
	assert.Contains(t, h.out.String(), `Command "help" receives one or zero arguments`)
}
