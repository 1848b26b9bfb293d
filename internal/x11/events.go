package x11

// Event is the union of server event kinds the manager cares about. Backend
// implementations translate the wire protocol's events into these; the rest
// of the repository never imports an xgb/xproto type directly.
type Event interface {
	isEvent()
}

// MapRequestEvent arrives when an unmapped top-level window wants to be
// mapped. Substructure-redirect on the root makes the manager, not the
// server, the recipient.
type MapRequestEvent struct {
	Window WindowID
}

// ConfigureRequestEvent carries a client's request to change its own
// geometry or stacking; value-mask bits name which fields are present.
type ConfigureRequestEvent struct {
	Window      WindowID
	ValueMask   uint16
	X, Y        int16
	W, H        uint16
	BorderWidth uint16
	Sibling     WindowID
	StackMode   uint8
}

// DestroyNotifyEvent arrives when a window has been destroyed.
type DestroyNotifyEvent struct {
	Window WindowID
}

// CreateNotifyEvent arrives when a new window is created (logged only).
type CreateNotifyEvent struct {
	Window WindowID
}

// EnterNotifyEvent arrives when the pointer enters a window (logged only).
type EnterNotifyEvent struct {
	Window WindowID
}

// LeaveNotifyEvent arrives when the pointer leaves a window (logged only).
type LeaveNotifyEvent struct {
	Window WindowID
}

// ButtonPressEvent arrives on a button press over a window the manager has
// selected ButtonPress on, delivered synchronously because of the root grab.
type ButtonPressEvent struct {
	Event          WindowID
	Child          WindowID
	Detail         Button
	RootX, RootY   int16
	Time           uint32
}

// ButtonReleaseEvent arrives on button release.
type ButtonReleaseEvent struct {
	Event        WindowID
	RootX, RootY int16
	Time         uint32
}

// MotionNotifyEvent arrives while a button is held over a window with
// Button1Motion selected.
type MotionNotifyEvent struct {
	Event        WindowID
	RootX, RootY int16
}

// ClientMessageEvent carries the out-of-process command channel's 20-byte
// payload.
type ClientMessageEvent struct {
	Window WindowID
	Type   Atom
	Format uint8
	Data   [5]uint32
}

func (MapRequestEvent) isEvent()       {}
func (ConfigureRequestEvent) isEvent() {}
func (DestroyNotifyEvent) isEvent()    {}
func (CreateNotifyEvent) isEvent()     {}
func (EnterNotifyEvent) isEvent()      {}
func (LeaveNotifyEvent) isEvent()      {}
func (ButtonPressEvent) isEvent()      {}
func (ButtonReleaseEvent) isEvent()    {}
func (MotionNotifyEvent) isEvent()     {}
func (ClientMessageEvent) isEvent()    {}
