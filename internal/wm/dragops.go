package wm

import (
	"fmt"

	"github.com/rinikkumar/wm/internal/wmlog"
	"github.com/rinikkumar/wm/internal/x11"
)

// handleButtonPress implements spec.md §4.6's Idle transitions, grounded on
// original_source/wm.c's handle_button_press: focus whatever was clicked,
// start a drag only for button 1 on a header, and always replay the
// synchronously-grabbed pointer afterward (matched or not) so normal client
// clicks still reach the client — see SPEC_FULL.md's supplemented-feature
// note on unconditional replay.
func (m *Manager) handleButtonPress(e x11.ButtonPressEvent) error {
	ws := m.ws.Current()
	w, ok := ws.Find(e.Event)
	if !ok && e.Child != x11.None {
		w, ok = ws.Find(e.Child)
	}
	if !ok {
		wmlog.Debugf("button-press: no managed window for event=%d child=%d", e.Event, e.Child)
		if err := m.backend.AllowEvents(); err != nil {
			return fmt.Errorf("allow events: %w", err)
		}
		return m.backend.Flush()
	}

	if err := m.Focus(w); err != nil {
		return fmt.Errorf("focus on press: %w", err)
	}

	if e.Event == w.HeaderID && e.Detail == x11.Button1 {
		token := dragSessionToken()
		wmlog.Debugf("drag start [%s]: window=%d press=(%d,%d) origin=(%d,%d)",
			token, w.ClientID, e.RootX, e.RootY, w.Geometry.X, w.Geometry.Y)
		m.drag.start(w.ClientID, w.Geometry, e.RootX, e.RootY)
	}

	if err := m.backend.AllowEvents(); err != nil {
		return fmt.Errorf("allow events: %w", err)
	}
	return m.backend.Flush()
}

// handleButtonRelease implements spec.md §4.6's Dragging→Idle transition on
// any button release.
func (m *Manager) handleButtonRelease(_ x11.ButtonReleaseEvent) error {
	if !m.drag.active() {
		return nil
	}
	m.drag.stop()
	return nil
}

// handleMotionNotify implements spec.md §4.6's drag arithmetic: the new
// frame position is always computed against the drag's origin and press
// point, never accumulated across motion events.
func (m *Manager) handleMotionNotify(e x11.MotionNotifyEvent) error {
	if !m.drag.active() {
		return nil
	}
	w, ok := m.ws.Current().Find(m.drag.target)
	if !ok {
		// The dragged window vanished (destroyed mid-drag); close the hole.
		m.drag.stop()
		return nil
	}

	dx := e.RootX - m.drag.press.X
	dy := e.RootY - m.drag.press.Y
	x := m.drag.origin.X + dx
	y := m.drag.origin.Y + dy

	if err := m.backend.Configure(w.FrameID, x11.ConfigureChanges{X: &x, Y: &y}); err != nil {
		return fmt.Errorf("configure during drag: %w", err)
	}
	w.Geometry.X, w.Geometry.Y = x, y
	return m.backend.Flush()
}
