package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinikkumar/wm/internal/x11"
)

func TestKillTerminatesFocusedClient(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{})
	require.NoError(t, m.Focus(w))

	require.NoError(t, m.Kill())
	assert.True(t, mock.Killed[w.ClientID])
}

func TestKillWithNothingFocusedReturnsNoFocus(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.Kill(), ErrNoFocus)
}

func TestMoveTranslatesFrame(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{X: 100, Y: 100, W: 50, H: 50})
	require.NoError(t, m.Focus(w))

	require.NoError(t, m.Move(-10, 20))
	assert.Equal(t, int16(90), w.Geometry.X)
	assert.Equal(t, int16(120), w.Geometry.Y)
	assert.Equal(t, int16(90), mock.Geometries[w.FrameID].X)
}

func TestResizeGrowsFrameAndReflowsChildren(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{X: 0, Y: 0, W: 200, H: 150})
	require.NoError(t, m.Focus(w))

	require.NoError(t, m.Resize(40, -10))
	assert.Equal(t, uint16(240), w.Geometry.W)
	assert.Equal(t, uint16(140), w.Geometry.H)
	assert.Equal(t, uint16(240), mock.Geometries[w.FrameID].W)
	assert.Equal(t, uint16(240), mock.Geometries[w.HeaderID].W)
	assert.Equal(t, uint16(240-2*m.cfg.BorderSize), mock.Geometries[w.ClientID].W)
	assert.Equal(t, uint16(140-m.cfg.HeaderSize-2*m.cfg.BorderSize), mock.Geometries[w.ClientID].H)
}

// TestSwitchToRemapsWindowsBetweenWorkspaces covers the workspace-switch
// half of seed scenario S4: switching workspaces unmaps every frame on the
// departing workspace and maps every frame on the arriving one.
func TestSwitchToRemapsWindowsBetweenWorkspaces(t *testing.T) {
	m, mock := newTestManager(t)
	a := m.ws.Current().Create(1, 2, 3, x11.Geometry{})
	require.NoError(t, m.Focus(a))

	require.NoError(t, m.SwitchTo(1))
	assert.Equal(t, 1, m.ws.CurrentIndex())
	assert.False(t, mock.Mapped[a.FrameID])

	b, ok := m.ws.At(1)
	require.True(t, ok)
	c := b.Create(4, 5, 6, x11.Geometry{})
	require.NoError(t, m.Focus(c))

	require.NoError(t, m.SwitchTo(0))
	assert.Equal(t, 0, m.ws.CurrentIndex())
	assert.True(t, mock.Mapped[a.FrameID])
	assert.False(t, mock.Mapped[c.FrameID])
}

func TestSwitchToSameWorkspaceIsNoop(t *testing.T) {
	m, mock := newTestManager(t)
	mock.Calls = nil
	require.NoError(t, m.SwitchTo(0))
	assert.Empty(t, mock.Calls)
}

func TestSwitchToOutOfRangeReturnsWorkspaceRange(t *testing.T) {
	m, mock := newTestManager(t)
	mock.Calls = nil
	assert.ErrorIs(t, m.SwitchTo(m.ws.Len()+1), ErrWorkspaceRange)
	assert.Empty(t, mock.Calls)
}

// TestSendToMovesFocusedWindowPreservingState covers spec.md §4.8: sending
// the focused window to another workspace removes it from the current one
// and adopts it into the target, unmapped, with its state and saved
// geometry untouched.
func TestSendToMovesFocusedWindowPreservingState(t *testing.T) {
	m, mock := newTestManager(t)
	current := m.ws.Current()
	w := current.Create(1, 2, 3, x11.Geometry{X: 5, Y: 5, W: 100, H: 100})
	require.NoError(t, m.Focus(w))
	require.NoError(t, m.SnapLeft())
	savedBeforeMove := w.SavedGeometry

	require.NoError(t, m.SendTo(1))

	_, ok := current.Find(w.ClientID)
	assert.False(t, ok, "window must leave the source workspace")

	target, _ := m.ws.At(1)
	moved, ok := target.Find(w.ClientID)
	require.True(t, ok, "window must be adopted by the target workspace")
	assert.Equal(t, StateSnappedLeft, moved.State)
	assert.Equal(t, savedBeforeMove, moved.SavedGeometry)
	assert.False(t, mock.Mapped[w.FrameID])
}

func TestSendToWithNothingFocusedReturnsNoFocus(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.SendTo(1), ErrNoFocus)
}

func TestSendToCurrentWorkspaceIsNoop(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.ws.Current().Create(1, 2, 3, x11.Geometry{})
	require.NoError(t, m.Focus(w))
	require.NoError(t, m.SendTo(0))

	_, ok := m.ws.Current().Find(w.ClientID)
	assert.True(t, ok)
}
