// Package wm implements the reparenting/framing protocol, the focus and
// drag state machines, the window-state transitions, the workspace
// multiplexer, and the command dispatcher described in spec.md — the
// engine a display backend (internal/x11) and an atom registry
// (internal/atoms) are wired into.
package wm

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rinikkumar/wm/internal/atoms"
	"github.com/rinikkumar/wm/internal/config"
	"github.com/rinikkumar/wm/internal/wmlog"
	"github.com/rinikkumar/wm/internal/x11"
)

// Manager is the single-threaded event-loop core: the only place that
// mutates ManagedWindow, Workspace, WorkspaceSet, and drag state, and the
// only place that decides between "log and drop" and "die" for an error.
type Manager struct {
	backend x11.Backend
	cfg     config.Config
	atoms   *atoms.Registry

	screen x11.ScreenInfo
	ws     *WorkspaceSet
	drag   dragState
}

// New connects to the display backend and interns the command atoms. Both
// are fatal-on-failure setup steps per spec.md §4.10/§7; New returns the
// error for the caller (cmd/swm's main) to turn into wmlog.Fatalf + exit 1.
func New(backend x11.Backend, cfg config.Config) (*Manager, error) {
	screen, err := backend.Connect()
	if err != nil {
		return nil, fmt.Errorf("could not connect: %w", err)
	}
	registry, err := atoms.NewRegistry(backend)
	if err != nil {
		return nil, fmt.Errorf("could not intern command atoms: %w", err)
	}
	return &Manager{
		backend: backend,
		cfg:     cfg,
		atoms:   registry,
		screen:  screen,
		ws:      NewWorkspaceSet(cfg.MaxWorkspaces),
	}, nil
}

// Init takes ownership of the root window's substructure-redirect events and
// grabs every button in synchronous mode, as the sole window manager must.
// A failure here (most likely another window manager already owns the
// root's SubstructureRedirect) is fatal.
func (m *Manager) Init() error {
	mask := x11.EventMaskSubstructureNotify | x11.EventMaskSubstructureRedirect |
		x11.EventMaskButtonPress | x11.EventMaskButtonRelease
	if err := m.backend.SelectEvents(m.screen.Root, mask); err != nil {
		return fmt.Errorf("could not become window manager (is another WM running?): %w", err)
	}
	if err := m.backend.GrabButton(m.screen.Root, x11.ButtonAny, x11.ModifierAny); err != nil {
		return fmt.Errorf("could not grab buttons on root: %w", err)
	}
	return m.backend.Flush()
}

// Run blocks on WaitEvent and drives every handler to completion before
// reading the next event (spec.md §5: single-threaded, handler-atomic).
// It returns nil on a clean QUIT command or display-server disconnect.
func (m *Manager) Run() error {
	for {
		ev, ok := m.backend.WaitEvent()
		if !ok {
			return nil
		}
		if err := m.dispatch(ev); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			wmlog.Debugf("handler error: %v", err)
		}
	}
}

func (m *Manager) dispatch(ev x11.Event) error {
	switch e := ev.(type) {
	case x11.MapRequestEvent:
		return m.handleMapRequest(e.Window)
	case x11.ConfigureRequestEvent:
		return m.handleConfigureRequest(e)
	case x11.DestroyNotifyEvent:
		return m.handleDestroyNotify(e.Window)
	case x11.CreateNotifyEvent:
		wmlog.Debugf("create notify: window=%d", e.Window)
		return nil
	case x11.EnterNotifyEvent:
		wmlog.Debugf("enter notify: window=%d", e.Window)
		return nil
	case x11.LeaveNotifyEvent:
		wmlog.Debugf("leave notify: window=%d", e.Window)
		return nil
	case x11.ButtonPressEvent:
		return m.handleButtonPress(e)
	case x11.ButtonReleaseEvent:
		return m.handleButtonRelease(e)
	case x11.MotionNotifyEvent:
		return m.handleMotionNotify(e)
	case x11.ClientMessageEvent:
		return m.handleClientMessage(e)
	default:
		wmlog.Debugf("unhandled event: %#v", ev)
		return nil
	}
}

// dragSessionToken returns an opaque id that tags the drag-start debug log
// line without reusing a server window id as a log key. The id is not
// stored, so the motion and release handlers do not log it.
func dragSessionToken() string {
	return uuid.NewString()[:8]
}
