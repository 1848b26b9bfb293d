// Package x11mock provides a scripted implementation of x11.Backend for
// driving the manager in tests without a display server. It records every
// call it receives so tests can assert on ordering (§8's "backend log"
// invariants) and lets the test feed a canned sequence of events through
// WaitEvent.
package x11mock

import (
	"fmt"
	"sync"

	"github.com/rinikkumar/wm/internal/x11"
)

// Call is one recorded backend invocation.
type Call struct {
	Op   string
	Args []any
}

// Mock is a scripted, in-memory x11.Backend.
type Mock struct {
	mu sync.Mutex

	Screen  x11.ScreenInfo
	nextID  uint32
	atoms   map[string]x11.Atom
	events  []x11.Event
	eventAt int

	Calls []Call

	// Geometries records the last-known server-side geometry of every
	// window the mock has created or configured, keyed by window id.
	Geometries map[x11.WindowID]x11.Geometry
	Mapped     map[x11.WindowID]bool
	Background map[x11.WindowID]x11.Color
	Border     map[x11.WindowID]x11.Color
	Destroyed  map[x11.WindowID]bool
	Killed     map[x11.WindowID]bool
}

// New creates a Mock with the given screen dimensions.
func New(screenW, screenH uint16) *Mock {
	return &Mock{
		Screen:     x11.ScreenInfo{Root: 1, W: screenW, H: screenH},
		nextID:     100,
		atoms:      make(map[string]x11.Atom),
		Geometries: make(map[x11.WindowID]x11.Geometry),
		Mapped:     make(map[x11.WindowID]bool),
		Background: make(map[x11.WindowID]x11.Color),
		Border:     make(map[x11.WindowID]x11.Color),
		Destroyed:  make(map[x11.WindowID]bool),
		Killed:     make(map[x11.WindowID]bool),
	}
}

// QueueEvents appends events for WaitEvent to return in order.
func (m *Mock) QueueEvents(evs ...x11.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evs...)
}

// SeedGeometry pre-registers a window's queryable geometry, used to mimic
// an unmanaged client's geometry at map-request time.
func (m *Mock) SeedGeometry(w x11.WindowID, g x11.Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Geometries[w] = g
}

func (m *Mock) record(op string, args ...any) {
	m.Calls = append(m.Calls, Call{Op: op, Args: args})
}

func (m *Mock) allocID() x11.WindowID {
	m.nextID++
	return x11.WindowID(m.nextID)
}

func (m *Mock) Connect() (x11.ScreenInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Connect")
	return m.Screen, nil
}

func (m *Mock) SelectEvents(window x11.WindowID, mask x11.EventMask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SelectEvents", window, mask)
	return nil
}

func (m *Mock) InternAtom(name string) (x11.Atom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("InternAtom", name)
	if a, ok := m.atoms[name]; ok {
		return a, nil
	}
	a := x11.Atom(len(m.atoms) + 1)
	m.atoms[name] = a
	return a, nil
}

func (m *Mock) CreateFrame(parent x11.WindowID, geom x11.Geometry, borderWidth uint16, borderColor x11.Color, mask x11.EventMask) (x11.WindowID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.allocID()
	m.record("CreateFrame", parent, geom, borderWidth, borderColor, mask)
	m.Geometries[id] = geom
	m.Border[id] = borderColor
	return id, nil
}

func (m *Mock) CreateHeader(frame x11.WindowID, width, headerHeight uint16, backColor x11.Color, mask x11.EventMask) (x11.WindowID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.allocID()
	m.record("CreateHeader", frame, width, headerHeight, backColor, mask)
	m.Geometries[id] = x11.Geometry{W: width, H: headerHeight}
	m.Background[id] = backColor
	return id, nil
}

func (m *Mock) Reparent(client, newParent x11.WindowID, x, y int16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Reparent", client, newParent, x, y)
	return nil
}

func (m *Mock) Configure(window x11.WindowID, changes x11.ConfigureChanges) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Configure", window, changes)
	g := m.Geometries[window]
	if changes.X != nil {
		g.X = *changes.X
	}
	if changes.Y != nil {
		g.Y = *changes.Y
	}
	if changes.W != nil {
		g.W = *changes.W
	}
	if changes.H != nil {
		g.H = *changes.H
	}
	m.Geometries[window] = g
	return nil
}

func (m *Mock) Map(window x11.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Map", window)
	m.Mapped[window] = true
	return nil
}

func (m *Mock) Unmap(window x11.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Unmap", window)
	m.Mapped[window] = false
	return nil
}

func (m *Mock) Destroy(window x11.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Destroy", window)
	m.Destroyed[window] = true
	return nil
}

func (m *Mock) ChangeBackground(window x11.WindowID, color x11.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ChangeBackground", window, color)
	m.Background[window] = color
	return nil
}

func (m *Mock) ChangeBorder(window x11.WindowID, color x11.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ChangeBorder", window, color)
	m.Border[window] = color
	return nil
}

func (m *Mock) ClearArea(window x11.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ClearArea", window)
	return nil
}

func (m *Mock) KillClient(window x11.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("KillClient", window)
	m.Killed[window] = true
	return nil
}

func (m *Mock) GrabButton(root x11.WindowID, button x11.Button, modifiers uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GrabButton", root, button, modifiers)
	return nil
}

func (m *Mock) AllowEvents() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("AllowEvents")
	return nil
}

func (m *Mock) QueryGeometry(window x11.WindowID) (x11.Geometry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("QueryGeometry", window)
	g, ok := m.Geometries[window]
	if !ok {
		return x11.Geometry{}, fmt.Errorf("no seeded geometry for window %d", window)
	}
	return g, nil
}

func (m *Mock) SendClientMessage(target x11.WindowID, atom x11.Atom, payload [5]uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SendClientMessage", target, atom, payload)
	return nil
}

func (m *Mock) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Flush")
	return nil
}

func (m *Mock) WaitEvent() (x11.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.eventAt >= len(m.events) {
		return nil, false
	}
	ev := m.events[m.eventAt]
	m.eventAt++
	return ev, true
}
