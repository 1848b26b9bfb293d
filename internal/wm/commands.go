package wm

import (
	"fmt"

	"github.com/rinikkumar/wm/internal/x11"
)

// Kill requests that the focused window's client terminate, per spec.md
// §4.9's KILL command. Returns ErrNoFocus if nothing is focused; the
// dispatcher logs and drops that case rather than treating it as fatal.
func (m *Manager) Kill() error {
	w, ok := m.ws.Current().Focused()
	if !ok {
		return ErrNoFocus
	}
	if err := m.backend.KillClient(w.ClientID); err != nil {
		return fmt.Errorf("kill client: %w", err)
	}
	return m.backend.Flush()
}

// Move translates the focused window's frame by (dx, dy), per spec.md
// §4.9's MOVE command. Returns ErrNoFocus if nothing is focused.
func (m *Manager) Move(dx, dy int32) error {
	w, ok := m.ws.Current().Focused()
	if !ok {
		return ErrNoFocus
	}
	x := w.Geometry.X + int16(dx)
	y := w.Geometry.Y + int16(dy)
	if err := m.backend.Configure(w.FrameID, x11.ConfigureChanges{X: &x, Y: &y}); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	w.Geometry.X, w.Geometry.Y = x, y
	return m.backend.Flush()
}

// Resize grows or shrinks the focused window's frame by (dw, dh) and
// reapplies geometry through applyGeometry so the header/client children
// stay in sync, per spec.md §4.9's RESIZE command. Returns ErrNoFocus if
// nothing is focused.
func (m *Manager) Resize(dw, dh int32) error {
	w, ok := m.ws.Current().Focused()
	if !ok {
		return ErrNoFocus
	}
	geom := w.Geometry
	geom.W = uint16(int32(geom.W) + dw)
	geom.H = uint16(int32(geom.H) + dh)
	decorated := w.State != StateFullscreen
	return m.applyGeometry(w, geom, decorated)
}

// SwitchTo implements spec.md §4.8: returns ErrWorkspaceRange if i is out
// of range, is a no-op if i is already current, and otherwise unmaps every
// frame on the current workspace, switches, maps every frame on the new
// one, and re-focuses its recorded focus.
func (m *Manager) SwitchTo(i int) error {
	if !m.ws.InRange(i) {
		return ErrWorkspaceRange
	}
	if i == m.ws.CurrentIndex() {
		return nil
	}
	current := m.ws.Current()
	for _, w := range current.Windows() {
		if err := m.backend.Unmap(w.FrameID); err != nil {
			return fmt.Errorf("unmap on switch: %w", err)
		}
	}

	next, _ := m.ws.At(i)
	m.ws.current = i
	for _, w := range next.Windows() {
		if err := m.backend.Map(w.FrameID); err != nil {
			return fmt.Errorf("map on switch: %w", err)
		}
	}

	if err := m.backend.Flush(); err != nil {
		return err
	}

	if w, ok := next.Focused(); ok {
		// Re-run the focus repaint/raise now that the workspace is visible;
		// Focus is idempotent against the recorded reference, so clear it
		// first to force the repaint pass.
		next.ClearFocused()
		return m.Focus(w)
	}
	return nil
}

// SendTo implements spec.md §4.8: returns ErrNoFocus if nothing is
// focused, ErrWorkspaceRange if i is out of range, is a no-op if i is the
// current workspace, and otherwise moves the focused window into
// workspace i's collection, unmapping its frame, while its state and
// saved geometry survive the move unchanged.
func (m *Manager) SendTo(i int) error {
	current := m.ws.Current()
	w, ok := current.Focused()
	if !ok {
		return ErrNoFocus
	}
	if !m.ws.InRange(i) {
		return ErrWorkspaceRange
	}
	if i == m.ws.CurrentIndex() {
		return nil
	}
	target, _ := m.ws.At(i)

	if _, removed := current.Remove(w.ClientID); !removed {
		return nil
	}
	target.adopt(w)

	if err := m.backend.Unmap(w.FrameID); err != nil {
		return fmt.Errorf("unmap on send-to-workspace: %w", err)
	}
	return m.backend.Flush()
}
