package wm

import (
	"fmt"

	"github.com/rinikkumar/wm/internal/x11"
)

// Focus implements spec.md §4.5: idempotent when w is already focused,
// otherwise repaints every window's header/border to focused/unfocused
// colors, raises w, and records it as the workspace's focused window.
func (m *Manager) Focus(w *ManagedWindow) error {
	ws := m.ws.Current()
	if cur, ok := ws.Focused(); ok && cur.ClientID == w.ClientID {
		return nil
	}

	for _, other := range ws.Windows() {
		headerColor := x11.Color(m.cfg.UnfocusedHeaderColor)
		borderColor := x11.Color(m.cfg.UnfocusedBorderColor)
		if other.ClientID == w.ClientID {
			headerColor = x11.Color(m.cfg.FocusedHeaderColor)
			borderColor = x11.Color(m.cfg.FocusedBorderColor)
		}
		if err := m.backend.ChangeBackground(other.HeaderID, headerColor); err != nil {
			return fmt.Errorf("repaint header: %w", err)
		}
		if err := m.backend.ChangeBorder(other.FrameID, borderColor); err != nil {
			return fmt.Errorf("repaint border: %w", err)
		}
		if err := m.backend.ClearArea(other.HeaderID); err != nil {
			return fmt.Errorf("clear header: %w", err)
		}
	}

	above := x11.StackModeAbove
	if err := m.backend.Configure(w.FrameID, x11.ConfigureChanges{StackMode: &above}); err != nil {
		return fmt.Errorf("raise frame: %w", err)
	}

	ws.SetFocused(w)
	return m.backend.Flush()
}

// FocusRelative implements spec.md §4.5's focus-cycling: a no-op on an
// empty workspace, focuses the first window if nothing is focused, and
// otherwise wraps by direction (+1 or -1) through insertion order.
func (m *Manager) FocusRelative(direction int) error {
	ws := m.ws.Current()
	windows := ws.Windows()
	n := len(windows)
	if n == 0 {
		return nil
	}

	cur, ok := ws.Focused()
	if !ok {
		return m.Focus(windows[0])
	}

	idx := ws.indexOf(cur.ClientID)
	if idx < 0 {
		return m.Focus(windows[0])
	}
	next := ((idx+direction)%n + n) % n
	return m.Focus(windows[next])
}
