package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rinikkumar/wm/internal/config"
	"github.com/rinikkumar/wm/internal/x11"
	"github.com/rinikkumar/wm/internal/x11mock"
)

func newTestManager(t *testing.T) (*Manager, *x11mock.Mock) {
	t.Helper()
	mock := x11mock.New(1920, 1080)
	m, err := New(mock, config.Default())
	require.NoError(t, err)
	return m, mock
}

func TestFocusIsIdempotentWhenAlreadyFocused(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(50, 51, 52, x11.Geometry{W: 100, H: 100})

	require.NoError(t, m.Focus(w))
	callsAfterFirst := len(mock.Calls)

	require.NoError(t, m.Focus(w))
	assert.Equal(t, callsAfterFirst, len(mock.Calls), "refocusing the already-focused window must be a no-op")
}

func TestFocusRepaintsExactlyOneWindowFocused(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	a := ws.Create(1, 2, 3, x11.Geometry{})
	b := ws.Create(4, 5, 6, x11.Geometry{})

	require.NoError(t, m.Focus(a))
	require.NoError(t, m.Focus(b))

	assert.Equal(t, x11.Color(m.cfg.FocusedHeaderColor), mock.Background[b.HeaderID])
	assert.Equal(t, x11.Color(m.cfg.FocusedBorderColor), mock.Border[b.FrameID])
	assert.Equal(t, x11.Color(m.cfg.UnfocusedHeaderColor), mock.Background[a.HeaderID])
	assert.Equal(t, x11.Color(m.cfg.UnfocusedBorderColor), mock.Border[a.FrameID])
}

func TestFocusRelativeOnEmptyWorkspaceIsNoop(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NoError(t, m.FocusRelative(1))
	_, ok := m.ws.Current().Focused()
	assert.False(t, ok)
}

func TestFocusRelativeWrapsAroundInsertionOrder(t *testing.T) {
	m, _ := newTestManager(t)
	ws := m.ws.Current()
	a := ws.Create(1, 2, 3, x11.Geometry{})
	b := ws.Create(4, 5, 6, x11.Geometry{})
	c := ws.Create(7, 8, 9, x11.Geometry{})

	require.NoError(t, m.Focus(a))
	require.NoError(t, m.FocusRelative(1))
	cur, _ := ws.Focused()
	assert.Equal(t, b.ClientID, cur.ClientID)

	require.NoError(t, m.FocusRelative(1))
	cur, _ = ws.Focused()
	assert.Equal(t, c.ClientID, cur.ClientID)

	require.NoError(t, m.FocusRelative(1))
	cur, _ = ws.Focused()
	assert.Equal(t, a.ClientID, cur.ClientID, "cycling forward past the last window must wrap to the first")

	require.NoError(t, m.FocusRelative(-1))
	cur, _ = ws.Focused()
	assert.Equal(t, c.ClientID, cur.ClientID, "cycling backward past the first window must wrap to the last")
}

// TestFocusCycleReturnsToStart is the generalized form of spec.md's focus
// cycling invariant: calling FocusRelative(1) exactly N times, where N is
// the number of managed windows, always returns focus to the window it
// started on, for any nonempty set of windows and any starting point.
func TestFocusCycleReturnsToStart(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(rt, "n")

		m, _ := newTestManager(t)
		ws := m.ws.Current()
		for i := 0; i < n; i++ {
			ws.Create(x11.WindowID(10+3*i), x11.WindowID(11+3*i), x11.WindowID(12+3*i), x11.Geometry{})
		}

		start := rapid.IntRange(0, n-1).Draw(rt, "start")
		require.NoError(rt, m.Focus(ws.Windows()[start]))
		startID := ws.Windows()[start].ClientID

		for i := 0; i < n; i++ {
			require.NoError(rt, m.FocusRelative(1))
		}

		cur, ok := ws.Focused()
		require.True(rt, ok)
		assert.Equal(rt, startID, cur.ClientID)
	})
}
