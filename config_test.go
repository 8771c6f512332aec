package embedcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	e, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "> ", e.invitation)
	assert.Equal(t, 64, e.ring.capacity())
	assert.Equal(t, 64, cap(e.cmd))
	assert.Equal(t, 128, e.hist.capBytes())
}

func TestNew_RejectsTinyCmdBuffer(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}, WithCmdBufferSize(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_RejectsUndersizedCallerBuffer(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}, WithBuffer(make([]byte, 4)))
	assert.ErrorIs(t, err, ErrArenaTooSmall)
}

func TestNew_AcceptsExactlySizedCallerBuffer(t *testing.T) {
	t.Parallel()

	cfg := Config{RxBufferSize: 8, CmdBufferSize: 8, HistoryBufferSize: 16, MaxBindingCount: 2}
	buf := make([]byte, RequiredSize(cfg))
	e, err := New(cfg, WithBuffer(buf))
	require.NoError(t, err)
	assert.Equal(t, 8, e.ring.capacity())
}

func TestRequiredSize_AccountsForRingSlotWaste(t *testing.T) {
	t.Parallel()

	cfg := Config{RxBufferSize: 16, CmdBufferSize: 32, HistoryBufferSize: 64}
	assert.Equal(t, 17+32+64, RequiredSize(cfg))
}

func TestNew_HelpBindingAlwaysPresent(t *testing.T) {
	t.Parallel()

	e, err := New(Config{}, WithMaxBindings(1))
	require.NoError(t, err)
	_, ok := e.bindings.lookup("help")
	assert.True(t, ok)
}

func TestNew_ZeroHistorySizeDisablesHistory(t *testing.T) {
	t.Parallel()

	e, err := New(Config{}, WithHistorySize(0))
	require.NoError(t, err)
	e.hist.put("anything")
	assert.Equal(t, 0, e.hist.itemsCount)
}
