package wm

import "github.com/rinikkumar/wm/internal/x11"

// Workspace owns an ordered collection of ManagedWindows (insertion order is
// the focus-cycling order) plus a weak reference to the focused one.
//
// The focused reference is stored as a client_id, not a pointer, precisely
// because of the pointer-into-resizable-collection hazard spec.md §5/§9
// calls out: windows is resized on Create/Remove, so any raw pointer into
// it (or into a slice of values) can dangle across a mutation. Resolving by
// id on every access closes that hole without needing an arena or
// generational-index scheme.
type Workspace struct {
	windows []*ManagedWindow
	focused x11.WindowID // x11.None when nothing is focused
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Create appends a new ManagedWindow in Normal state and returns it.
func (ws *Workspace) Create(clientID, frameID, headerID x11.WindowID, geom x11.Geometry) *ManagedWindow {
	w := &ManagedWindow{
		ClientID: clientID,
		FrameID:  frameID,
		HeaderID: headerID,
		Geometry: geom,
		State:    StateNormal,
	}
	ws.windows = append(ws.windows, w)
	return w
}

// Find returns the ManagedWindow whose client, frame, or header id equals
// id, searching only this workspace.
func (ws *Workspace) Find(id x11.WindowID) (*ManagedWindow, bool) {
	if id == x11.None {
		return nil, false
	}
	for _, w := range ws.windows {
		if w.ClientID == id || w.FrameID == id || w.HeaderID == id {
			return w, true
		}
	}
	return nil, false
}

// Remove deletes the window with the given client id, preserving the
// relative order of survivors. If it was focused, the focused reference
// becomes none; no replacement focus is chosen.
func (ws *Workspace) Remove(clientID x11.WindowID) (*ManagedWindow, bool) {
	for i, w := range ws.windows {
		if w.ClientID == clientID {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			if ws.focused == clientID {
				ws.focused = x11.None
			}
			return w, true
		}
	}
	return nil, false
}

// adopt appends an already-constructed ManagedWindow (used by SendTo to move
// a window between workspaces without losing its state/saved geometry).
func (ws *Workspace) adopt(w *ManagedWindow) {
	ws.windows = append(ws.windows, w)
}

// Windows returns the workspace's windows in insertion/focus-cycling order.
// The returned slice is owned by the caller to range over, not to retain
// across a mutating call.
func (ws *Workspace) Windows() []*ManagedWindow {
	return ws.windows
}

// Len returns the number of managed windows in the workspace.
func (ws *Workspace) Len() int {
	return len(ws.windows)
}

// Focused resolves the workspace's focused reference to a live window.
func (ws *Workspace) Focused() (*ManagedWindow, bool) {
	return ws.Find(ws.focused)
}

// SetFocused updates the focused reference to w's client id.
func (ws *Workspace) SetFocused(w *ManagedWindow) {
	ws.focused = w.ClientID
}

// ClearFocused clears the focused reference.
func (ws *Workspace) ClearFocused() {
	ws.focused = x11.None
}

// indexOf returns the position of the window with the given client id, or
// -1 if absent.
func (ws *Workspace) indexOf(clientID x11.WindowID) int {
	for i, w := range ws.windows {
		if w.ClientID == clientID {
			return i
		}
	}
	return -1
}

// WorkspaceSet is the fixed-size array of workspaces plus the current index.
type WorkspaceSet struct {
	slots   []*Workspace
	current int
}

// NewWorkspaceSet builds n workspaces, starting on index 0.
func NewWorkspaceSet(n int) *WorkspaceSet {
	s := &WorkspaceSet{slots: make([]*Workspace, n)}
	for i := range s.slots {
		s.slots[i] = NewWorkspace()
	}
	return s
}

// Len returns the number of workspace slots.
func (s *WorkspaceSet) Len() int {
	return len(s.slots)
}

// CurrentIndex returns the index of the currently visible workspace.
func (s *WorkspaceSet) CurrentIndex() int {
	return s.current
}

// Current returns the currently visible workspace.
func (s *WorkspaceSet) Current() *Workspace {
	return s.slots[s.current]
}

// At returns the workspace at index i, or false if i is out of range.
func (s *WorkspaceSet) At(i int) (*Workspace, bool) {
	if i < 0 || i >= len(s.slots) {
		return nil, false
	}
	return s.slots[i], true
}

// InRange reports whether i names a valid workspace slot.
func (s *WorkspaceSet) InRange(i int) bool {
	return i >= 0 && i < len(s.slots)
}
