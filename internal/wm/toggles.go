package wm

import "github.com/rinikkumar/wm/internal/x11"

// toggle implements the uniform template spec.md §4.7 describes for
// snap-left, snap-right, maximize, and fullscreen: entering the target
// state saves the current geometry and applies the target rectangle;
// toggling again restores Normal. Returns ErrNoFocus if nothing is
// focused.
func (m *Manager) toggle(target State, rect x11.Geometry, decorated bool) error {
	w, ok := m.ws.Current().Focused()
	if !ok {
		return ErrNoFocus
	}
	if w.State != target {
		SaveState(w)
		w.State = target
		return m.applyGeometry(w, rect, decorated)
	}
	RestoreState(w)
	return m.applyGeometry(w, w.Geometry, true)
}

// snapLeftRect, snapRightRect, and fullScreenRect (shared by maximize and
// fullscreen) are the target rectangles from spec.md §4.7's table.
func snapLeftRect(screen x11.ScreenInfo) x11.Geometry {
	return x11.Geometry{X: 0, Y: 0, W: screen.W / 2, H: screen.H}
}

func snapRightRect(screen x11.ScreenInfo) x11.Geometry {
	return x11.Geometry{X: int16(screen.W / 2), Y: 0, W: screen.W / 2, H: screen.H}
}

func fullScreenRect(screen x11.ScreenInfo) x11.Geometry {
	return x11.Geometry{X: 0, Y: 0, W: screen.W, H: screen.H}
}

func (m *Manager) SnapLeft() error {
	return m.toggle(StateSnappedLeft, snapLeftRect(m.screen), true)
}

func (m *Manager) SnapRight() error {
	return m.toggle(StateSnappedRight, snapRightRect(m.screen), true)
}

func (m *Manager) Maximize() error {
	return m.toggle(StateMaximized, fullScreenRect(m.screen), true)
}

func (m *Manager) Fullscreen() error {
	return m.toggle(StateFullscreen, fullScreenRect(m.screen), false)
}
