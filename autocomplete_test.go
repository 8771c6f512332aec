package embedcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBindingTable(t *testing.T, names ...string) *bindingTable {
	t.Helper()
	bt := newBindingTable(len(names) + 1)
	for _, n := range names {
		require.True(t, bt.add(Binding{Name: n, Handler: func(any, string) int { return 0 }}))
	}
	return bt
}

func TestAutocomplete_UniquePrefixYieldsSingleCandidate(t *testing.T) {
	t.Parallel()

	bt := newTestBindingTable(t, "help", "get-led", "get-adc", "set")
	res := bt.autocomplete("get-l")

	assert.Equal(t, 1, res.CandidateCount)
	assert.Equal(t, "get-led", res.FirstCandidate)
	assert.Equal(t, len("get-led"), res.AutocompletedLen)
}

func TestAutocomplete_AmbiguousPrefixYieldsLongestCommonPrefix(t *testing.T) {
	t.Parallel()

	bt := newTestBindingTable(t, "help", "get-led", "get-adc", "set")
	res := bt.autocomplete("g")

	assert.Equal(t, 2, res.CandidateCount)
	assert.Equal(t, "get-", res.FirstCandidate[:res.AutocompletedLen])

	names := bt.candidateNames()
	for _, n := range names {
		assert.Equal(t, "get-", n[:res.AutocompletedLen], "every candidate must share the reported common prefix")
	}
}

func TestAutocomplete_EmptyPrefixYieldsNoCandidates(t *testing.T) {
	t.Parallel()

	bt := newTestBindingTable(t, "help", "get-led")
	res := bt.autocomplete("")
	assert.Equal(t, 0, res.CandidateCount)
}

func TestAutocomplete_NoMatch(t *testing.T) {
	t.Parallel()

	bt := newTestBindingTable(t, "help", "get-led")
	res := bt.autocomplete("zzz")
	assert.Equal(t, 0, res.CandidateCount)
}

func TestAutocomplete_ClearsStaleCandidateFlags(t *testing.T) {
	t.Parallel()

	bt := newTestBindingTable(t, "alpha", "beta")
	_ = bt.autocomplete("a")
	require.Equal(t, []string{"alpha"}, bt.candidateNames())

	// A fresh computation must not leak the previous round's flags.
	_ = bt.autocomplete("zzz")
	assert.Empty(t, bt.candidateNames())
}
