package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xproto"
)

// Conn is the xgb-backed Backend implementation. It is the only file in the
// repository that imports xgb/xproto directly.
type Conn struct {
	conn   *xgb.Conn
	screen xproto.ScreenInfo
}

// NewConn dials the display server named by the DISPLAY environment
// variable (xgb.NewConn's usual resolution) but does not yet query the
// screen; call Connect to finish setup.
func NewConn() (*Conn, error) {
	c, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("could not connect to display server: %w", err)
	}
	return &Conn{conn: c}, nil
}

func (c *Conn) Connect() (ScreenInfo, error) {
	setup := xproto.Setup(c.conn)
	if setup == nil || len(setup.Roots) < 1 {
		return ScreenInfo{}, fmt.Errorf("could not parse display setup info")
	}
	c.screen = setup.Roots[0]
	if err := xfixes.Init(c.conn); err != nil {
		return ScreenInfo{}, fmt.Errorf("could not initialize xfixes: %w", err)
	}
	return ScreenInfo{
		Root: WindowID(c.screen.Root),
		W:    c.screen.WidthInPixels,
		H:    c.screen.HeightInPixels,
	}, nil
}

func (c *Conn) Close() {
	c.conn.Close()
}

func (c *Conn) SelectEvents(window WindowID, mask EventMask) error {
	err := xproto.ChangeWindowAttributesChecked(c.conn, xproto.Window(window),
		xproto.CwEventMask, []uint32{toXEventMask(mask)}).Check()
	if err != nil {
		return fmt.Errorf("could not select events: %w", err)
	}
	return nil
}

func (c *Conn) InternAtom(name string) (Atom, error) {
	reply, err := xproto.InternAtom(c.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("could not intern atom %q: %w", name, err)
	}
	if reply == nil {
		return 0, fmt.Errorf("no reply interning atom %q", name)
	}
	return Atom(reply.Atom), nil
}

func (c *Conn) CreateFrame(parent WindowID, geom Geometry, borderWidth uint16, borderColor Color, mask EventMask) (WindowID, error) {
	id, err := xproto.NewWindowId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("could not allocate frame id: %w", err)
	}
	err = xproto.CreateWindowChecked(c.conn, c.screen.RootDepth, id, xproto.Window(parent),
		geom.X, geom.Y, geom.W, geom.H, borderWidth,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		xproto.CwBorderPixel|xproto.CwEventMask,
		[]uint32{uint32(borderColor), toXEventMask(mask)},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("could not create frame window: %w", err)
	}
	return WindowID(id), nil
}

func (c *Conn) CreateHeader(frame WindowID, width, headerHeight uint16, backColor Color, mask EventMask) (WindowID, error) {
	id, err := xproto.NewWindowId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("could not allocate header id: %w", err)
	}
	err = xproto.CreateWindowChecked(c.conn, c.screen.RootDepth, id, xproto.Window(frame),
		0, 0, width, headerHeight, 0,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{uint32(backColor), toXEventMask(mask)},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("could not create header window: %w", err)
	}
	return WindowID(id), nil
}

func (c *Conn) Reparent(client, newParent WindowID, x, y int16) error {
	if err := xproto.ReparentWindowChecked(c.conn, xproto.Window(client), xproto.Window(newParent), x, y).Check(); err != nil {
		return fmt.Errorf("could not reparent window: %w", err)
	}
	// Insert the client into the server's save-set: if the manager dies,
	// the server reparents it back to the root instead of leaving it
	// stranded as a child of a frame nobody owns anymore.
	if err := xfixes.ChangeSaveSetChecked(c.conn, xfixes.SaveSetModeInsert, xfixes.SaveSetTargetNearest, xfixes.SaveSetMapNearest, xproto.Window(client)).Check(); err != nil {
		return fmt.Errorf("could not update save-set: %w", err)
	}
	return nil
}

func (c *Conn) Configure(window WindowID, changes ConfigureChanges) error {
	var mask uint16
	var values []uint32
	if changes.X != nil {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(int32(*changes.X)))
	}
	if changes.Y != nil {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(int32(*changes.Y)))
	}
	if changes.W != nil {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(*changes.W))
	}
	if changes.H != nil {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(*changes.H))
	}
	if changes.BorderWidth != nil {
		mask |= xproto.ConfigWindowBorderWidth
		values = append(values, uint32(*changes.BorderWidth))
	}
	if changes.Sibling != nil {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(*changes.Sibling))
	}
	if changes.StackMode != nil {
		mask |= xproto.ConfigWindowStackMode
		sm := xproto.StackModeAbove
		if *changes.StackMode == StackModeBelow {
			sm = xproto.StackModeBelow
		}
		values = append(values, uint32(sm))
	}
	if mask == 0 {
		return nil
	}
	if err := xproto.ConfigureWindowChecked(c.conn, xproto.Window(window), mask, values).Check(); err != nil {
		return fmt.Errorf("could not configure window: %w", err)
	}
	return nil
}

func (c *Conn) Map(window WindowID) error {
	if err := xproto.MapWindowChecked(c.conn, xproto.Window(window)).Check(); err != nil {
		return fmt.Errorf("could not map window: %w", err)
	}
	return nil
}

func (c *Conn) Unmap(window WindowID) error {
	if err := xproto.UnmapWindowChecked(c.conn, xproto.Window(window)).Check(); err != nil {
		return fmt.Errorf("could not unmap window: %w", err)
	}
	return nil
}

func (c *Conn) Destroy(window WindowID) error {
	if err := xproto.DestroyWindowChecked(c.conn, xproto.Window(window)).Check(); err != nil {
		return fmt.Errorf("could not destroy window: %w", err)
	}
	return nil
}

func (c *Conn) ChangeBackground(window WindowID, color Color) error {
	err := xproto.ChangeWindowAttributesChecked(c.conn, xproto.Window(window),
		xproto.CwBackPixel, []uint32{uint32(color)}).Check()
	if err != nil {
		return fmt.Errorf("could not change background: %w", err)
	}
	return nil
}

func (c *Conn) ChangeBorder(window WindowID, color Color) error {
	err := xproto.ChangeWindowAttributesChecked(c.conn, xproto.Window(window),
		xproto.CwBorderPixel, []uint32{uint32(color)}).Check()
	if err != nil {
		return fmt.Errorf("could not change border: %w", err)
	}
	return nil
}

func (c *Conn) ClearArea(window WindowID) error {
	if err := xproto.ClearAreaChecked(c.conn, false, xproto.Window(window), 0, 0, 0, 0).Check(); err != nil {
		return fmt.Errorf("could not clear area: %w", err)
	}
	return nil
}

func (c *Conn) KillClient(window WindowID) error {
	if err := xproto.KillClientChecked(c.conn, uint32(window)).Check(); err != nil {
		return fmt.Errorf("could not kill client: %w", err)
	}
	return nil
}

func (c *Conn) GrabButton(root WindowID, button Button, modifiers uint16) error {
	err := xproto.GrabButtonChecked(c.conn, false, xproto.Window(root),
		uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease),
		xproto.GrabModeSync, xproto.GrabModeAsync,
		0, 0, xproto.ButtonIndex(button), modifiers,
	).Check()
	if err != nil {
		return fmt.Errorf("could not grab button: %w", err)
	}
	return nil
}

func (c *Conn) AllowEvents() error {
	if err := xproto.AllowEventsChecked(c.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("could not replay pointer: %w", err)
	}
	return nil
}

func (c *Conn) QueryGeometry(window WindowID) (Geometry, error) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(window)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("could not query geometry: %w", err)
	}
	if reply == nil {
		return Geometry{}, fmt.Errorf("no geometry reply for window %d", window)
	}
	return Geometry{X: reply.X, Y: reply.Y, W: reply.Width, H: reply.Height}, nil
}

func (c *Conn) SendClientMessage(target WindowID, atom Atom, payload [5]uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(target),
		Type:   xproto.Atom(atom),
		Data:   xproto.ClientMessageDataUnionData32New(payload[:]),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	if err := xproto.SendEventChecked(c.conn, false, xproto.Window(target), mask, string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("could not send client message: %w", err)
	}
	return nil
}

func (c *Conn) Flush() error {
	c.conn.Sync()
	return nil
}

func (c *Conn) WaitEvent() (Event, bool) {
	xev, err := c.conn.WaitForEvent()
	if err != nil {
		return nil, true // protocol error on a request; keep the loop alive
	}
	if xev == nil {
		return nil, false // connection closed
	}
	return translate(xev), true
}

func translate(xev xgb.Event) Event {
	switch e := xev.(type) {
	case xproto.MapRequestEvent:
		return MapRequestEvent{Window: WindowID(e.Window)}
	case xproto.ConfigureRequestEvent:
		return ConfigureRequestEvent{
			Window: WindowID(e.Window), ValueMask: e.ValueMask,
			X: e.X, Y: e.Y, W: e.Width, H: e.Height,
			BorderWidth: e.BorderWidth, Sibling: WindowID(e.Sibling),
			StackMode: uint8(e.StackMode),
		}
	case xproto.DestroyNotifyEvent:
		return DestroyNotifyEvent{Window: WindowID(e.Window)}
	case xproto.CreateNotifyEvent:
		return CreateNotifyEvent{Window: WindowID(e.Window)}
	case xproto.EnterNotifyEvent:
		return EnterNotifyEvent{Window: WindowID(e.Event)}
	case xproto.LeaveNotifyEvent:
		return LeaveNotifyEvent{Window: WindowID(e.Event)}
	case xproto.ButtonPressEvent:
		return ButtonPressEvent{
			Event: WindowID(e.Event), Child: WindowID(e.Child),
			Detail: Button(e.Detail), RootX: e.RootX, RootY: e.RootY,
			Time: uint32(e.Time),
		}
	case xproto.ButtonReleaseEvent:
		return ButtonReleaseEvent{Event: WindowID(e.Event), RootX: e.RootX, RootY: e.RootY, Time: uint32(e.Time)}
	case xproto.MotionNotifyEvent:
		return MotionNotifyEvent{Event: WindowID(e.Event), RootX: e.RootX, RootY: e.RootY}
	case xproto.ClientMessageEvent:
		var data [5]uint32
		copy(data[:], e.Data.Data32)
		return ClientMessageEvent{Window: WindowID(e.Window), Type: Atom(e.Type), Format: e.Format, Data: data}
	default:
		return nil
	}
}

func toXEventMask(mask EventMask) uint32 {
	var out uint32
	if mask&EventMaskSubstructureNotify != 0 {
		out |= xproto.EventMaskSubstructureNotify
	}
	if mask&EventMaskSubstructureRedirect != 0 {
		out |= xproto.EventMaskSubstructureRedirect
	}
	if mask&EventMaskButtonPress != 0 {
		out |= xproto.EventMaskButtonPress
	}
	if mask&EventMaskButtonRelease != 0 {
		out |= xproto.EventMaskButtonRelease
	}
	if mask&EventMaskButton1Motion != 0 {
		out |= xproto.EventMaskButton1Motion
	}
	return out
}
