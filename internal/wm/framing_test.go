package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinikkumar/wm/internal/x11"
)

// TestHandleMapRequestFramesAndReparents is seed scenario S1: an unmanaged
// client requests mapping, and the manager creates a frame and header,
// reparents the client under the frame, focuses it, and maps all three.
func TestHandleMapRequestFramesAndReparents(t *testing.T) {
	m, mock := newTestManager(t)
	client := x11.WindowID(500)
	mock.SeedGeometry(client, x11.Geometry{X: 10, Y: 10, W: 300, H: 200})

	require.NoError(t, m.handleMapRequest(client))

	ws := m.ws.Current()
	require.Equal(t, 1, ws.Len())
	w, ok := ws.Find(client)
	require.True(t, ok)

	assert.True(t, mock.Mapped[w.FrameID])
	assert.True(t, mock.Mapped[w.HeaderID])
	assert.True(t, mock.Mapped[client])

	cur, ok := ws.Focused()
	require.True(t, ok)
	assert.Equal(t, client, cur.ClientID)

	var reparented bool
	for _, c := range mock.Calls {
		if c.Op == "Reparent" && c.Args[0] == client {
			reparented = true
		}
	}
	assert.True(t, reparented)
}

func TestHandleMapRequestAccountsForHeaderHeight(t *testing.T) {
	m, mock := newTestManager(t)
	client := x11.WindowID(501)
	mock.SeedGeometry(client, x11.Geometry{X: 0, Y: 50, W: 300, H: 200})

	require.NoError(t, m.handleMapRequest(client))

	w, _ := m.ws.Current().Find(client)
	assert.Equal(t, int16(50-int16(m.cfg.HeaderSize)), w.Geometry.Y)
	assert.Equal(t, m.cfg.HeaderSize+200, w.Geometry.H)
}

func TestHandleMapRequestClampsNegativeFrameY(t *testing.T) {
	m, mock := newTestManager(t)
	client := x11.WindowID(502)
	mock.SeedGeometry(client, x11.Geometry{X: 0, Y: 0, W: 300, H: 200})

	require.NoError(t, m.handleMapRequest(client))

	w, _ := m.ws.Current().Find(client)
	assert.Equal(t, int16(0), w.Geometry.Y)
}

func TestHandleDestroyNotifyTearsDownManagedWindow(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{W: 10, H: 10})

	require.NoError(t, m.handleDestroyNotify(w.ClientID))

	assert.True(t, mock.Destroyed[w.FrameID])
	assert.True(t, mock.Destroyed[w.HeaderID])
	_, ok := ws.Find(w.ClientID)
	assert.False(t, ok)
}

func TestHandleDestroyNotifyOfUnmanagedWindowIsNoop(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NoError(t, m.handleDestroyNotify(x11.WindowID(12345)))
}

func TestHandleDestroyNotifyStopsDragOnTarget(t *testing.T) {
	m, _ := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{W: 10, H: 10})
	m.drag.start(w.ClientID, w.Geometry, 0, 0)

	require.NoError(t, m.handleDestroyNotify(w.ClientID))
	assert.False(t, m.drag.active())
}

func TestHandleConfigureRequestForwardsRequestedFields(t *testing.T) {
	m, mock := newTestManager(t)
	const maskX = 1 << 0
	const maskW = 1 << 2

	err := m.handleConfigureRequest(x11.ConfigureRequestEvent{
		Window:    777,
		ValueMask: maskX | maskW,
		X:         42,
		W:         640,
	})
	require.NoError(t, err)

	var cfgArgs []any
	for _, c := range mock.Calls {
		if c.Op == "Configure" && c.Args[0] == x11.WindowID(777) {
			cfgArgs = c.Args
		}
	}
	require.NotNil(t, cfgArgs)
	changes := cfgArgs[1].(x11.ConfigureChanges)
	require.NotNil(t, changes.X)
	assert.Equal(t, int16(42), *changes.X)
	require.NotNil(t, changes.W)
	assert.Equal(t, uint16(640), *changes.W)
	assert.Nil(t, changes.Y)
	assert.Nil(t, changes.H)
}
