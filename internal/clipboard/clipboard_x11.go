//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// x11Backend owns the CLIPBOARD selection through a hidden window and serves
// the offered payloads to requestors from its event loop.
type x11Backend struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  x11Atoms

	mu      sync.RWMutex
	offered map[Format][]byte
}

type x11Atoms struct {
	clipboard, targets, utf8, png, property xproto.Atom
}

func openBackend() (backend, error) {
	if !hasDisplay() {
		return nil, errNoDisplay
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}
	window, err := hiddenWindow(conn, xproto.EventMaskPropertyChange|xproto.EventMaskStructureNotify)
	if err != nil {
		conn.Close()
		return nil, err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return nil, err
	}
	b := &x11Backend{conn: conn, window: window, atoms: atoms, offered: map[Format][]byte{}}
	go b.serve()
	return b, nil
}

func hiddenWindow(conn *xgb.Conn, mask uint32) (xproto.Window, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		return 0, fmt.Errorf("x11 window: %w", err)
	}
	return window, nil
}

func internAtoms(conn *xgb.Conn) (x11Atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "image/png", "SHINEYDRAW_CLIPBOARD"}
	atoms := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return x11Atoms{}, fmt.Errorf("intern %s: %w", name, err)
		}
		atoms[i] = reply.Atom
	}
	return x11Atoms{clipboard: atoms[0], targets: atoms[1], utf8: atoms[2], png: atoms[3], property: atoms[4]}, nil
}

func (b *x11Backend) target(f Format) xproto.Atom {
	if f == FormatPNG {
		return b.atoms.png
	}
	return b.atoms.utf8
}

func (b *x11Backend) write(f Format, data []byte) error {
	b.mu.Lock()
	b.offered = map[Format][]byte{f: append([]byte(nil), data...)}
	b.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(b.conn, b.window, b.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (b *x11Backend) serve() {
	for {
		ev, err := b.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			b.answer(e)
		case xproto.SelectionClearEvent:
			b.mu.Lock()
			b.offered = map[Format][]byte{}
			b.mu.Unlock()
		}
	}
}

// answer stores the requested payload on the requestor's property and tells
// it so. Unknown targets are refused with a None property.
func (b *x11Backend) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	b.mu.RLock()
	offered := b.offered
	b.mu.RUnlock()

	switch e.Target {
	case b.atoms.targets:
		list := []xproto.Atom{b.atoms.targets}
		for f := range offered {
			list = append(list, b.target(f))
			if f == FormatText {
				list = append(list, xproto.AtomString)
			}
		}
		buf := make([]byte, 4*len(list))
		for i, a := range list {
			xgb.Put32(buf[4*i:], uint32(a))
		}
		xproto.ChangeProperty(b.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(list)), buf)
	case b.atoms.utf8, xproto.AtomString:
		b.put(e.Requestor, &property, e.Target, offered[FormatText])
	case b.atoms.png:
		b.put(e.Requestor, &property, e.Target, offered[FormatPNG])
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(b.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func (b *x11Backend) put(requestor xproto.Window, property *xproto.Atom, target xproto.Atom, data []byte) {
	if len(data) == 0 {
		*property = xproto.AtomNone
		return
	}
	xproto.ChangeProperty(b.conn, xproto.PropModeReplace, requestor, *property, target, 8, uint32(len(data)), data)
}

// read converts the selection onto a scratch window of a fresh connection so
// requests to our own selection are served by the event loop.
func (b *x11Backend) read(f Format) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}
	defer conn.Close()
	window, err := hiddenWindow(conn, xproto.EventMaskPropertyChange)
	if err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	err = xproto.ConvertSelectionChecked(conn, window, b.atoms.clipboard, b.target(f), b.atoms.property, xproto.TimeCurrentTime).Check()
	if err != nil {
		return nil, fmt.Errorf("convert selection: %w", err)
	}
	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			return nil, err
		}
		e, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok || e.Requestor != window {
			continue
		}
		if e.Property == xproto.AtomNone {
			return nil, fmt.Errorf("read %v: %w", f, errEmpty)
		}
		reply, perr := xproto.GetProperty(conn, true, window, e.Property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
		if perr != nil {
			return nil, fmt.Errorf("get property: %w", perr)
		}
		return append([]byte(nil), reply.Value...), nil
	}
}
