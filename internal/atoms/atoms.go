// Package atoms holds the closed set of command atoms the manager listens
// for on the root window, grounded on original_source/ipc.c's single
// WM_COMMAND_ATOM and wmc.c's per-verb command table, generalized to the
// one-atom-per-verb scheme spec.md §4.2 specifies.
package atoms

import "github.com/rinikkumar/wm/internal/x11"

// CommandKind names one verb in the command channel's closed vocabulary.
type CommandKind int

const (
	Kill CommandKind = iota
	Move
	Resize
	FocusNext
	FocusPrev
	SnapLeft
	SnapRight
	Maximize
	Fullscreen
	SwitchWorkspace
	SendToWorkspace
	Quit
)

// names is the authoritative ordering and wire-name mapping; NewRegistry
// walks it in order at startup.
var names = [...]struct {
	kind CommandKind
	name string
}{
	{Kill, "_WM_COMMAND_KILL"},
	{Move, "_WM_COMMAND_MOVE"},
	{Resize, "_WM_COMMAND_RESIZE"},
	{FocusNext, "_WM_COMMAND_FOCUS_NEXT"},
	{FocusPrev, "_WM_COMMAND_FOCUS_PREV"},
	{SnapLeft, "_WM_COMMAND_SNAP_LEFT"},
	{SnapRight, "_WM_COMMAND_SNAP_RIGHT"},
	{Maximize, "_WM_COMMAND_MAXIMIZE"},
	{Fullscreen, "_WM_COMMAND_FULLSCREEN"},
	{SwitchWorkspace, "_WM_COMMAND_SWITCH_WORKSPACE"},
	{SendToWorkspace, "_WM_COMMAND_SEND_TO_WORKSPACE"},
	{Quit, "_WM_COMMAND_QUIT"},
}

// Name returns the wire atom name for a command kind.
func (k CommandKind) Name() string {
	for _, n := range names {
		if n.kind == k {
			return n.name
		}
	}
	return ""
}

// Interner is the subset of x11.Backend the registry needs at startup.
type Interner interface {
	InternAtom(name string) (x11.Atom, error)
}

// Registry is the reverse lookup from atom to command kind, built once at
// startup by interning every name in the closed vocabulary.
type Registry struct {
	byAtom map[x11.Atom]CommandKind
	byKind map[CommandKind]x11.Atom
}

// NewRegistry interns one atom per command name. A failure to intern any
// atom is a fatal startup error per spec.md §7.
func NewRegistry(backend Interner) (*Registry, error) {
	r := &Registry{
		byAtom: make(map[x11.Atom]CommandKind, len(names)),
		byKind: make(map[CommandKind]x11.Atom, len(names)),
	}
	for _, n := range names {
		a, err := backend.InternAtom(n.name)
		if err != nil {
			return nil, err
		}
		r.byAtom[a] = n.kind
		r.byKind[n.kind] = a
	}
	return r, nil
}

// Lookup resolves a wire atom to the command it names. ok is false for any
// atom outside the closed vocabulary (the manager logs and ignores these).
func (r *Registry) Lookup(a x11.Atom) (CommandKind, bool) {
	k, ok := r.byAtom[a]
	return k, ok
}

// Atom returns the wire atom for a command kind, used by the companion
// command-sending utility.
func (r *Registry) Atom(k CommandKind) (x11.Atom, bool) {
	a, ok := r.byKind[k]
	return a, ok
}
