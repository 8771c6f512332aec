package embedcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_DuringHandlerBypassesLineRestoration(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.e.AddBinding(Binding{Name: "log", Handler: func(_ any, _ string) int {
		h.e.Print("hello")
		return 0
	}}))

	h.send("log\r")
	out := h.out.String()
	assert.Contains(t, out, "hello\r\n")
	// Direct-print mode never clears the line first, so no leading CR+spaces
	// sequence appears immediately before the message.
	assert.NotContains(t, out, "\r \r")
}

func TestPrint_WhileIdleClearsThenRepaintsLine(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithAutoComplete(false), WithInvitation(">"))
	h.send("ab")
	h.out.Reset()

	h.e.Print("note")

	out := h.out.String()
	wantClear := "\r" + spaces(len(">")+2) + "\r"
	assert.True(t, len(out) >= len(wantClear) && out[:len(wantClear)] == wantClear)
	assert.Contains(t, out, "note\r\n")
	assert.Contains(t, out, ">ab")
}
