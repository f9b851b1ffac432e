// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

// Package x11 implements [native.API] against an X11 server using the
// pure-Go XGB protocol bindings. The message-queue contract follows the
// same shape as the win32 backend: close requests arrive through the
// WM_DELETE_WINDOW protocol, destruction through DestroyNotify, resizes
// through ConfigureNotify, and paints through Expose or an invalidation
// synthesized locally, since X has no repaint scheduler of its own.
//
// Pixel layout within each 32-bit framebuffer value is the ZPixmap-native
// BGRX order; the blit swizzles from the view's byte order.
package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/base/logx"
	"github.com/Sobeston/ZWL/system/native"
)

const eventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// X11 implements [native.API] over one X server connection.
type X11 struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	proc   native.MessageProc

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	registered bool

	gcs     map[xproto.Window]xproto.Gcontext
	sizes   map[xproto.Window]image.Point
	dirty   map[xproto.Window]bool
	order   []xproto.Window
	bitmaps map[native.Bitmap]*image.RGBA
	nextBM  native.Bitmap
}

var _ native.API = (*X11)(nil)

// Open connects to the X server named by the DISPLAY environment.
func Open() (*X11, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	x := &X11{
		conn:    conn,
		screen:  xproto.Setup(conn).DefaultScreen(conn),
		gcs:     map[xproto.Window]xproto.Gcontext{},
		sizes:   map[xproto.Window]image.Point{},
		dirty:   map[xproto.Window]bool{},
		bitmaps: map[native.Bitmap]*image.RGBA{},
	}
	x.wmProtocols, err = x.atom("WM_PROTOCOLS")
	if err != nil {
		conn.Close()
		return nil, err
	}
	x.wmDeleteWindow, err = x.atom("WM_DELETE_WINDOW")
	if err != nil {
		conn.Close()
		return nil, err
	}
	return x, nil
}

func (x *X11) atom(name string) (xproto.Atom, error) {
	r, err := xproto.InternAtom(x.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: intern atom %s: %w", name, err)
	}
	return r.Atom, nil
}

// RegisterClass records the message proc. X has no window-class concept;
// the registration identity lives client-side.
func (x *X11) RegisterClass(name string, proc native.MessageProc) error {
	if x.registered {
		return errors.New("x11: window class already registered")
	}
	x.registered = true
	x.proc = proc
	return nil
}

func (x *X11) UnregisterClass() error {
	if !x.registered {
		return errors.New("x11: no registered window class")
	}
	x.registered = false
	return nil
}

func (x *X11) CreateWindow(cfg native.WindowConfig) (native.WindowID, error) {
	wid, err := xproto.NewWindowId(x.conn)
	if err != nil {
		return 0, fmt.Errorf("x11: allocate window id: %w", err)
	}
	err = xproto.CreateWindowChecked(x.conn, x.screen.RootDepth, wid, x.screen.Root,
		0, 0, uint16(cfg.Width), uint16(cfg.Height), 0,
		xproto.WindowClassInputOutput, x.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{x.screen.BlackPixel, eventMask}).Check()
	if err != nil {
		return 0, fmt.Errorf("x11: create window: %w", err)
	}

	// Opt in to the close-request protocol so the window manager sends a
	// ClientMessage instead of killing the connection.
	deleteWindow := make([]byte, 4)
	xgb.Put32(deleteWindow, uint32(x.wmDeleteWindow))
	xproto.ChangeProperty(x.conn, xproto.PropModeReplace, wid, x.wmProtocols,
		xproto.AtomAtom, 32, 1, deleteWindow)
	xproto.ChangeProperty(x.conn, xproto.PropModeReplace, wid, xproto.AtomWmName,
		xproto.AtomString, 8, uint32(len(cfg.Title)), []byte(cfg.Title))

	gc, err := xproto.NewGcontextId(x.conn)
	if err != nil {
		xproto.DestroyWindow(x.conn, wid)
		return 0, fmt.Errorf("x11: allocate gcontext id: %w", err)
	}
	if err := xproto.CreateGCChecked(x.conn, gc, xproto.Drawable(wid), 0, nil).Check(); err != nil {
		xproto.DestroyWindow(x.conn, wid)
		return 0, fmt.Errorf("x11: create gcontext: %w", err)
	}

	x.gcs[wid] = gc
	x.sizes[wid] = image.Pt(cfg.Width, cfg.Height)
	x.order = append(x.order, wid)
	return native.WindowID(wid), nil
}

func (x *X11) DestroyWindow(id native.WindowID) error {
	wid := xproto.Window(id)
	if gc, ok := x.gcs[wid]; ok {
		xproto.FreeGC(x.conn, gc)
		delete(x.gcs, wid)
	}
	// The DestroyNotify this generates arrives through the event queue as
	// a separate dispatch.
	return xproto.DestroyWindowChecked(x.conn, wid).Check()
}

func (x *X11) ShowWindow(id native.WindowID, visible bool) {
	if visible {
		xproto.MapWindow(x.conn, xproto.Window(id))
	} else {
		xproto.UnmapWindow(x.conn, xproto.Window(id))
	}
	x.conn.Sync()
}

// NextMessage blocks on the X event queue, synthesizing Paint messages for
// invalidated windows first: X delivers Expose only for compositor-driven
// damage, so client-side invalidation must schedule its own repaint.
func (x *X11) NextMessage() (native.Message, error) {
	for {
		for _, wid := range x.order {
			if x.dirty[wid] {
				x.dirty[wid] = false
				return native.Message{Window: native.WindowID(wid), Kind: native.Paint}, nil
			}
		}
		ev, xerr := x.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return native.Message{}, native.ErrQueueDone
		}
		if xerr != nil {
			logx.Warn("x11: error event", "err", xerr.Error())
			continue
		}
		if msg, ok := x.translate(ev); ok {
			return msg, nil
		}
	}
}

func (x *X11) translate(ev xgb.Event) (native.Message, bool) {
	switch e := ev.(type) {
	case xproto.ClientMessageEvent:
		if e.Format == 32 && xproto.Atom(e.Data.Data32[0]) == x.wmDeleteWindow {
			return native.Message{Window: native.WindowID(e.Window), Kind: native.CloseRequest}, true
		}
	case xproto.DestroyNotifyEvent:
		delete(x.sizes, e.Window)
		delete(x.dirty, e.Window)
		return native.Message{Window: native.WindowID(e.Window), Kind: native.Destroyed}, true
	case xproto.ConfigureNotifyEvent:
		sz := image.Pt(int(e.Width), int(e.Height))
		if x.sizes[e.Window] == sz {
			return native.Message{}, false
		}
		x.sizes[e.Window] = sz
		return native.Message{Window: native.WindowID(e.Window), Kind: native.Resized,
			Width: sz.X, Height: sz.Y}, true
	case xproto.ExposeEvent:
		if e.Count > 0 { // more expose rectangles follow; paint once at the end
			return native.Message{}, false
		}
		return native.Message{Window: native.WindowID(e.Window), Kind: native.Paint}, true
	case xproto.MotionNotifyEvent:
		return native.Message{Window: native.WindowID(e.Event), Kind: native.MouseMove,
			X: int(e.EventX), Y: int(e.EventY)}, true
	case xproto.ButtonPressEvent:
		if b := buttonFor(e.Detail); b != 0 {
			return native.Message{Window: native.WindowID(e.Event), Kind: native.MouseDown,
				Button: b, X: int(e.EventX), Y: int(e.EventY)}, true
		}
	case xproto.ButtonReleaseEvent:
		if b := buttonFor(xproto.Button(e.Detail)); b != 0 {
			return native.Message{Window: native.WindowID(e.Event), Kind: native.MouseUp,
				Button: b, X: int(e.EventX), Y: int(e.EventY)}, true
		}
	case xproto.KeyPressEvent:
		return native.Message{Window: native.WindowID(e.Event), Kind: native.KeyDown,
			Scancode: uint32(e.Detail)}, true
	case xproto.KeyReleaseEvent:
		return native.Message{Window: native.WindowID(e.Event), Kind: native.KeyUp,
			Scancode: uint32(e.Detail)}, true
	default:
		logx.Debug("x11: unhandled event", "event", ev.String())
	}
	return native.Message{}, false
}

func buttonFor(b xproto.Button) int32 {
	switch b {
	case 1:
		return native.ButtonLeft
	case 2:
		return native.ButtonMiddle
	case 3:
		return native.ButtonRight
	}
	return 0 // wheel and extra buttons have no mapping
}

// DispatchMessage invokes the registered proc. An unhandled close request
// defaults to destroying the window; everything else unhandled is dropped.
func (x *X11) DispatchMessage(msg native.Message) {
	if x.proc != nil && x.proc(msg) {
		return
	}
	if msg.Kind == native.CloseRequest {
		errors.Log(x.DestroyWindow(msg.Window))
	}
}

// GetDC returns a drawing token for the window. X bundles drawing state in
// the per-window graphics context created with the window, so the token is
// the window itself.
func (x *X11) GetDC(id native.WindowID) (native.DC, error) {
	if _, ok := x.gcs[xproto.Window(id)]; !ok {
		return 0, errors.New("x11: get device context of dead window")
	}
	return native.DC(id), nil
}

func (x *X11) ReleaseDC(id native.WindowID, dc native.DC) {}

func (x *X11) CreateFramebuffer(dc native.DC, width, height int) (native.Bitmap, *image.RGBA, error) {
	x.nextBM++
	bm := x.nextBM
	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	x.bitmaps[bm] = pix
	return bm, pix, nil
}

func (x *X11) DeleteFramebuffer(b native.Bitmap) {
	delete(x.bitmaps, b)
}

// Blit uploads the bitmap to the window with PutImage, chunked by rows to
// stay under the protocol's request length limit.
func (x *X11) Blit(dc native.DC, b native.Bitmap, width, height int) error {
	wid := xproto.Window(dc)
	gc, ok := x.gcs[wid]
	if !ok {
		return errors.New("x11: blit to dead window")
	}
	pix := x.bitmaps[b]
	if pix == nil {
		return errors.New("x11: blit of deleted bitmap")
	}

	stride := width * 4
	data := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		row := pix.Pix[y*pix.Stride:]
		out := data[y*stride:]
		for xx := 0; xx < width; xx++ {
			out[xx*4+0] = row[xx*4+2] // B
			out[xx*4+1] = row[xx*4+1] // G
			out[xx*4+2] = row[xx*4+0] // R
			out[xx*4+3] = row[xx*4+3]
		}
	}

	const maxBytes = 1 << 18 // stay under the core protocol request limit
	rowsPer := maxBytes / stride
	if rowsPer < 1 {
		rowsPer = 1
	}
	for y := 0; y < height; y += rowsPer {
		n := rowsPer
		if y+n > height {
			n = height - y
		}
		err := xproto.PutImageChecked(x.conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(wid), gc,
			uint16(width), uint16(n), 0, int16(y), 0, x.screen.RootDepth,
			data[y*stride:(y+n)*stride]).Check()
		if err != nil {
			return fmt.Errorf("x11: put image: %w", err)
		}
	}
	return nil
}

// Invalidate marks the window for a locally synthesized Paint message.
func (x *X11) Invalidate(id native.WindowID) {
	if _, ok := x.sizes[xproto.Window(id)]; ok {
		x.dirty[xproto.Window(id)] = true
	}
}
