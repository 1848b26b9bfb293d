// Package x11 abstracts the display-server connection the window manager
// drives. Every operation is synchronous from the manager's point of view.
// Conn, the xgb-backed Backend, sends each request checked and waits for
// the server's answer before returning, so requests are not held back
// until Flush; Flush then makes a round trip to the server. A Backend is
// the only thing in the repository allowed to touch the wire.
package x11

// WindowID is a server-assigned identifier for a window.
type WindowID uint32

// None is the zero WindowID, used as a "no window" sentinel throughout.
const None WindowID = 0

// Atom is a server-interned name identifier (e.g. a command or property name).
type Atom uint32

// Color is a 24-bit RGB value, as accepted by CreateWindow/ChangeWindowAttributes.
type Color uint32

// Geometry is a window's position and size in root coordinates.
type Geometry struct {
	X, Y int16
	W, H uint16
}

// ScreenInfo describes the (single) screen the manager arbitrates.
type ScreenInfo struct {
	Root WindowID
	W, H uint16
}

// EventMask is a bitmask of server event classes a window should report.
type EventMask uint32

const (
	EventMaskSubstructureNotify EventMask = 1 << iota
	EventMaskSubstructureRedirect
	EventMaskButtonPress
	EventMaskButtonRelease
	EventMaskButton1Motion
)

// StackMode selects where Configure should place a window relative to its
// siblings.
type StackMode uint8

const (
	StackModeAbove StackMode = iota
	StackModeBelow
)

// ConfigureChanges is the subset of {x, y, w, h, border_w, sibling, stack_mode}
// a Configure call touches; nil fields are left unchanged.
type ConfigureChanges struct {
	X, Y          *int16
	W, H          *uint16
	BorderWidth   *uint16
	Sibling       *WindowID
	StackMode     *StackMode
}

// Button identifies a pointer button, matching the core protocol's 1-based
// numbering (button 1 is the primary/left button). ButtonAny matches any
// button, for use with GrabButton.
type Button uint8

const (
	ButtonAny Button = 0
	Button1   Button = 1
	Button2   Button = 2
	Button3   Button = 3
)

// ModifierAny matches a button grab regardless of which modifier keys
// (Shift, Control, NumLock, CapsLock, ...) are held, unlike a modifier
// mask of 0, which matches only a press with no modifiers held at all.
const ModifierAny uint16 = 0x8000
