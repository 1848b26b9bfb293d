package wm

import (
	"github.com/rinikkumar/wm/internal/atoms"
	"github.com/rinikkumar/wm/internal/wmlog"
	"github.com/rinikkumar/wm/internal/x11"
)

// handleClientMessage implements the command dispatcher of spec.md §4.9: a
// known command atom drives the matching operation with its payload; an
// atom outside the closed vocabulary is logged and ignored, never fatal.
func (m *Manager) handleClientMessage(e x11.ClientMessageEvent) error {
	kind, ok := m.atoms.Lookup(e.Type)
	if !ok {
		wmlog.Debugf("unknown command atom: %d", e.Type)
		return nil
	}

	switch kind {
	case atoms.Quit:
		return errQuit
	case atoms.Kill:
		return m.Kill()
	case atoms.Move:
		return m.Move(int32(e.Data[0]), int32(e.Data[1]))
	case atoms.Resize:
		return m.Resize(int32(e.Data[0]), int32(e.Data[1]))
	case atoms.FocusNext:
		return m.FocusRelative(1)
	case atoms.FocusPrev:
		return m.FocusRelative(-1)
	case atoms.SnapLeft:
		return m.SnapLeft()
	case atoms.SnapRight:
		return m.SnapRight()
	case atoms.Maximize:
		return m.Maximize()
	case atoms.Fullscreen:
		return m.Fullscreen()
	case atoms.SwitchWorkspace:
		return m.SwitchTo(int(int32(e.Data[0])))
	case atoms.SendToWorkspace:
		return m.SendTo(int(int32(e.Data[0])))
	default:
		wmlog.Debugf("unhandled command kind: %v", kind)
		return nil
	}
}
