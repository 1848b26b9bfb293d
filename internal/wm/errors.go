package wm

import "errors"

// ErrWindowNotFound names the case where no managed window matches a given
// server id. Workspace lookups do not return it: Workspace.Find reports that
// case through its ok result, and handlers treat it as a no-op, never as a
// bug to propagate (spec.md §7: "invariant violations ... return a typed
// not-found and let the handler no-op").
var ErrWindowNotFound = errors.New("window not found")

// ErrNoFocus is returned by operations that require a focused window
// (kill, move, resize, toggles) when the current workspace has none.
var ErrNoFocus = errors.New("no focused window")

// ErrWorkspaceRange is returned when a workspace index is out of bounds.
var ErrWorkspaceRange = errors.New("workspace index out of range")

// errQuit is the sentinel the event loop returns for the QUIT command; it
// is never logged as an error, only used to unwind Run cleanly.
var errQuit = errors.New("quit")
