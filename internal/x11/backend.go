package x11

// Backend is the thin, synchronous façade over the display server that the
// rest of the manager is built against. A real implementation (Conn) wraps
// an xgb connection; a scripted implementation (internal/x11mock) drives
// the manager in tests without a display server.
type Backend interface {
	// Connect opens the connection and returns the screen the manager will
	// arbitrate. A failure here is fatal to the process.
	Connect() (ScreenInfo, error)

	// SelectEvents subscribes window to the given event classes. Used once,
	// at startup, to claim SubstructureRedirect on the root — the mechanism
	// that makes a window manager possible.
	SelectEvents(window WindowID, mask EventMask) error

	// InternAtom resolves a name to a server atom, interning it if
	// necessary. A failure here is fatal to the process.
	InternAtom(name string) (Atom, error)

	// CreateFrame creates the outer decoration window for a newly adopted
	// client, as a child of parent (always the root in this manager).
	CreateFrame(parent WindowID, geom Geometry, borderWidth uint16, borderColor Color, mask EventMask) (WindowID, error)

	// CreateHeader creates the titlebar child of frame.
	CreateHeader(frame WindowID, width, headerHeight uint16, backColor Color, mask EventMask) (WindowID, error)

	// Reparent makes client a child of newParent at the given offset.
	Reparent(client, newParent WindowID, x, y int16) error

	// Configure applies the subset of geometry/stacking fields set in changes.
	Configure(window WindowID, changes ConfigureChanges) error

	Map(window WindowID) error
	Unmap(window WindowID) error
	Destroy(window WindowID) error

	ChangeBackground(window WindowID, color Color) error
	ChangeBorder(window WindowID, color Color) error

	// ClearArea forces a window to repaint (used after a background/border
	// color change so focus repaints are visible immediately).
	ClearArea(window WindowID) error

	KillClient(window WindowID) error

	// GrabButton requests synchronous delivery of the named button on root,
	// under the given modifier mask. Pass ButtonAny and ModifierAny to grab
	// every button regardless of held modifiers; a modifier mask of 0 means
	// "no modifiers held", not "any modifiers".
	GrabButton(root WindowID, button Button, modifiers uint16) error

	// AllowEvents replays a synchronously-grabbed pointer event so it
	// reaches the window underneath once the manager has finished with it.
	AllowEvents() error

	// QueryGeometry reads a window's current geometry from the server.
	QueryGeometry(window WindowID) (Geometry, error)

	SendClientMessage(target WindowID, atom Atom, payload [5]uint32) error

	// Flush makes sure every request issued so far has reached the server.
	Flush() error

	// WaitEvent blocks for the next event. ok is false on disconnection.
	WaitEvent() (Event, bool)
}
