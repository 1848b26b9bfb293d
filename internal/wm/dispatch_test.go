package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinikkumar/wm/internal/atoms"
	"github.com/rinikkumar/wm/internal/x11"
)

func TestHandleClientMessageDispatchesKnownCommand(t *testing.T) {
	m, mock := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{})
	require.NoError(t, m.Focus(w))

	atom, ok := m.atoms.Atom(atoms.Kill)
	require.True(t, ok)

	err := m.handleClientMessage(x11.ClientMessageEvent{Type: atom})
	require.NoError(t, err)
	assert.True(t, mock.Killed[w.ClientID])
}

func TestHandleClientMessageQuitReturnsSentinel(t *testing.T) {
	m, _ := newTestManager(t)
	atom, ok := m.atoms.Atom(atoms.Quit)
	require.True(t, ok)

	err := m.handleClientMessage(x11.ClientMessageEvent{Type: atom})
	assert.ErrorIs(t, err, errQuit)
}

func TestHandleClientMessageUnknownAtomIsIgnored(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.handleClientMessage(x11.ClientMessageEvent{Type: x11.Atom(999999)})
	assert.NoError(t, err)
}

func TestHandleClientMessageMoveCarriesPayload(t *testing.T) {
	m, _ := newTestManager(t)
	ws := m.ws.Current()
	w := ws.Create(1, 2, 3, x11.Geometry{X: 10, Y: 10, W: 50, H: 50})
	require.NoError(t, m.Focus(w))

	atom, ok := m.atoms.Atom(atoms.Move)
	require.True(t, ok)

	err := m.handleClientMessage(x11.ClientMessageEvent{
		Type: atom,
		Data: [5]uint32{uint32(int32(-5)), uint32(int32(15)), 0, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int16(5), w.Geometry.X)
	assert.Equal(t, int16(25), w.Geometry.Y)
}

// TestRunExitsCleanlyOnQuit checks that a QUIT client message unwinds the
// event loop without error.
func TestRunExitsCleanlyOnQuit(t *testing.T) {
	m, mock := newTestManager(t)
	require.NoError(t, m.Init())

	atom, ok := m.atoms.Atom(atoms.Quit)
	require.True(t, ok)
	mock.QueueEvents(x11.ClientMessageEvent{Type: atom})

	assert.NoError(t, m.Run())
}

func TestRunExitsCleanlyOnDisconnect(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Init())
	assert.NoError(t, m.Run())
}
