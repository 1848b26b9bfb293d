package wm

import (
	"fmt"

	"github.com/rinikkumar/wm/internal/wmlog"
	"github.com/rinikkumar/wm/internal/x11"
)

// handleMapRequest implements the framing/reparenting path, spec.md §4.4 and
// §4.10, grounded on original_source/wm.c's handle_map_request and
// funkycode-marwind/wm/frame.go's createFrame+reparent split.
func (m *Manager) handleMapRequest(client x11.WindowID) error {
	geom, err := m.backend.QueryGeometry(client)
	if err != nil {
		wmlog.Debugf("map-request: could not query geometry for %d: %v", client, err)
		return nil
	}

	frameX := geom.X
	frameY := geom.Y - int16(m.cfg.HeaderSize)
	if frameY < 0 {
		frameY = 0
	}

	frameGeom := x11.Geometry{X: frameX, Y: frameY, W: geom.W, H: geom.H + m.cfg.HeaderSize}
	frame, err := m.backend.CreateFrame(m.screen.Root, frameGeom, m.cfg.BorderSize,
		x11.Color(m.cfg.UnfocusedBorderColor),
		x11.EventMaskSubstructureNotify|x11.EventMaskSubstructureRedirect)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}

	header, err := m.backend.CreateHeader(frame, geom.W, m.cfg.HeaderSize,
		x11.Color(m.cfg.UnfocusedHeaderColor),
		x11.EventMaskButtonPress|x11.EventMaskButtonRelease|x11.EventMaskButton1Motion)
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	if err := m.backend.Reparent(client, frame, 0, int16(m.cfg.HeaderSize)); err != nil {
		return fmt.Errorf("reparent: %w", err)
	}

	win := m.ws.Current().Create(client, frame, header, frameGeom)

	if err := m.Focus(win); err != nil {
		wmlog.Debugf("map-request: focus failed: %v", err)
	}

	// Map frame, then header, then client — the client map is issued after
	// reparenting and is the one the server treats as authoritative, even
	// though the original MapRequest already signaled the client wants
	// mapping.
	if err := m.backend.Map(frame); err != nil {
		return fmt.Errorf("map frame: %w", err)
	}
	if err := m.backend.Map(header); err != nil {
		return fmt.Errorf("map header: %w", err)
	}
	if err := m.backend.Map(client); err != nil {
		return fmt.Errorf("map client: %w", err)
	}

	return m.backend.Flush()
}

// applyGeometry reconfigures a managed window's frame, and its header and
// client children, to match geom. decorated selects whether the header is
// shown (Normal/snapped/maximized) or hidden (fullscreen), per spec.md §4.4.
func (m *Manager) applyGeometry(w *ManagedWindow, geom x11.Geometry, decorated bool) error {
	borderWidth := m.cfg.BorderSize
	if !decorated {
		borderWidth = 0
	}
	x, y, width, height := geom.X, geom.Y, geom.W, geom.H
	changes := x11.ConfigureChanges{X: &x, Y: &y, W: &width, H: &height, BorderWidth: &borderWidth}
	if err := m.backend.Configure(w.FrameID, changes); err != nil {
		return fmt.Errorf("configure frame: %w", err)
	}

	if decorated {
		if err := m.backend.Map(w.HeaderID); err != nil {
			return fmt.Errorf("map header: %w", err)
		}
		hx, hy, hw, hh := int16(0), int16(0), geom.W, m.cfg.HeaderSize
		if err := m.backend.Configure(w.HeaderID, x11.ConfigureChanges{X: &hx, Y: &hy, W: &hw, H: &hh}); err != nil {
			return fmt.Errorf("configure header: %w", err)
		}
		cx, cy := int16(0), int16(m.cfg.HeaderSize)
		cw := geom.W - 2*m.cfg.BorderSize
		ch := geom.H - m.cfg.HeaderSize - 2*m.cfg.BorderSize
		if err := m.backend.Configure(w.ClientID, x11.ConfigureChanges{X: &cx, Y: &cy, W: &cw, H: &ch}); err != nil {
			return fmt.Errorf("configure client: %w", err)
		}
	} else {
		if err := m.backend.Unmap(w.HeaderID); err != nil {
			return fmt.Errorf("unmap header: %w", err)
		}
		cx, cy := int16(0), int16(0)
		if err := m.backend.Configure(w.ClientID, x11.ConfigureChanges{X: &cx, Y: &cy, W: &geom.W, H: &geom.H}); err != nil {
			return fmt.Errorf("configure client: %w", err)
		}
	}

	w.Geometry = geom
	return m.backend.Flush()
}

// handleConfigureRequest forwards the client's requested fields verbatim,
// exactly as original_source/wm.c's handle_configure_request does. This
// does not re-synchronize frame/header geometry for framed windows — a
// known, deliberately preserved desync (see the "ConfigureRequest
// pass-through" decision in DESIGN.md).
func (m *Manager) handleConfigureRequest(e x11.ConfigureRequestEvent) error {
	const (
		maskX           = 1 << 0
		maskY           = 1 << 1
		maskW           = 1 << 2
		maskH           = 1 << 3
		maskBorderWidth = 1 << 4
		maskSibling     = 1 << 5
		maskStackMode   = 1 << 6
	)
	var changes x11.ConfigureChanges
	if e.ValueMask&maskX != 0 {
		x := e.X
		changes.X = &x
	}
	if e.ValueMask&maskY != 0 {
		y := e.Y
		changes.Y = &y
	}
	if e.ValueMask&maskW != 0 {
		w := e.W
		changes.W = &w
	}
	if e.ValueMask&maskH != 0 {
		h := e.H
		changes.H = &h
	}
	if e.ValueMask&maskBorderWidth != 0 {
		bw := e.BorderWidth
		changes.BorderWidth = &bw
	}
	if e.ValueMask&maskSibling != 0 {
		s := e.Sibling
		changes.Sibling = &s
	}
	if e.ValueMask&maskStackMode != 0 {
		sm := x11.StackMode(e.StackMode)
		changes.StackMode = &sm
	}
	if err := m.backend.Configure(e.Window, changes); err != nil {
		return fmt.Errorf("configure request: %w", err)
	}
	return m.backend.Flush()
}

// handleDestroyNotify tears down a managed window's frame and header and
// removes its record when the window id matches an adopted client.
func (m *Manager) handleDestroyNotify(client x11.WindowID) error {
	ws := m.ws.Current()
	w, ok := ws.Find(client)
	if !ok || w.ClientID != client {
		return nil // not a managed client (or a frame/header id; ignore)
	}
	if err := m.backend.Destroy(w.FrameID); err != nil {
		wmlog.Debugf("destroy-notify: could not destroy frame %d: %v", w.FrameID, err)
	}
	if err := m.backend.Destroy(w.HeaderID); err != nil {
		wmlog.Debugf("destroy-notify: could not destroy header %d: %v", w.HeaderID, err)
	}
	ws.Remove(client)
	if m.drag.target == client {
		m.drag.stop()
	}
	return m.backend.Flush()
}
