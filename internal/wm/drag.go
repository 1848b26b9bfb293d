package wm

import "github.com/rinikkumar/wm/internal/x11"

// dragState is the event loop's singleton drag state machine (spec.md §4.6).
// target is stored as a client id, for the same reason Workspace.focused is:
// the window it names must be re-resolved through the current workspace on
// every access rather than dereferenced as a stale pointer.
type dragState struct {
	target x11.WindowID // x11.None ⇔ not dragging
	origin struct{ X, Y int16 }
	press  struct{ X, Y int16 }
}

func (d *dragState) active() bool {
	return d.target != x11.None
}

func (d *dragState) start(target x11.WindowID, origin x11.Geometry, pressX, pressY int16) {
	d.target = target
	d.origin.X, d.origin.Y = origin.X, origin.Y
	d.press.X, d.press.Y = pressX, pressY
}

func (d *dragState) stop() {
	d.target = x11.None
}
