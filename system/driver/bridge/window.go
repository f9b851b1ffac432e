// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"fmt"
	"image"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/system"
	"github.com/Sobeston/ZWL/system/native"
)

// Window implements [system.Window]. It owns one native window handle, its
// device context, its framebuffer, and a cached copy of the client-area
// size that the resize-notification path keeps authoritative.
type Window struct {
	app   *App
	title string

	// id is the native handle. It is only meaningful while alive is true:
	// the handle becomes empty exactly once, irreversibly, when the OS
	// notifies destruction, and no native call may target the window after
	// that.
	id    native.WindowID
	alive bool

	dc   native.DC
	fb   *framebuffer
	size image.Point

	// lastResizeErr records the most recent absorbed framebuffer
	// reallocation failure, nil after a successful resize.
	lastResizeErr error
}

var _ system.Window = (*Window)(nil)

// NewWindow creates a new window with the given options. A nil opts is
// valid and means to use the default option values. Construction failures
// are reported with full rollback: no partially constructed window is ever
// left behind.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Defaults()

	id, err := a.api.CreateWindow(native.WindowConfig{
		Title:     opts.Title,
		Width:     opts.Size.X,
		Height:    opts.Size.Y,
		Decorated: opts.Decorated,
		Resizable: opts.Resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("bridge: create window: %w: %w", system.ErrCreateWindow, err)
	}
	dc, err := a.api.GetDC(id)
	if err != nil {
		errors.Log(a.api.DestroyWindow(id))
		return nil, fmt.Errorf("bridge: get device context: %w: %w", system.ErrCreateWindow, err)
	}
	fb, err := newFramebuffer(a.api, dc, opts.Size)
	if err != nil {
		a.api.ReleaseDC(id, dc)
		errors.Log(a.api.DestroyWindow(id))
		return nil, fmt.Errorf("bridge: create initial framebuffer: %w", err)
	}

	w := &Window{
		app:   a,
		title: opts.Title,
		id:    id,
		alive: true,
		dc:    dc,
		fb:    fb,
		size:  opts.Size,
	}
	a.byID[id] = w
	a.windows = append(a.windows, w)
	if opts.Visible {
		a.api.ShowWindow(id, true)
	}
	return w, nil
}

// Size returns the cached client-area size. It never queries the OS and
// remains valid after the native window has been destroyed.
func (w *Window) Size() image.Point {
	return w.size
}

// Pixels returns a live view of the framebuffer storage, or nil after
// Close. The view is valid until the next resize or Close.
func (w *Window) Pixels() *image.RGBA {
	if w.fb == nil {
		return nil
	}
	return w.fb.pix
}

// Present marks the entire window surface as needing repaint, regardless
// of the regions passed. Once the native window is gone it is a silent
// no-op.
func (w *Window) Present(regions ...image.Rectangle) {
	if !w.alive {
		return
	}
	w.app.api.Invalidate(w.id)
}

func (w *Window) Title() string {
	return w.title
}

// Configure is reserved for post-creation reconfiguration and currently
// always fails with [system.ErrUnimplemented], with no side effect.
func (w *Window) Configure(opts *system.NewWindowOptions) error {
	return fmt.Errorf("bridge: configure window: %w", system.ErrUnimplemented)
}

// Close releases the framebuffer and the device context and, only if the
// native window still exists, removes the handle binding and asks the OS
// to destroy it. It is idempotent and safe whether or not the OS already
// destroyed the window out-of-band.
func (w *Window) Close() {
	a := w.app
	if w.fb != nil {
		w.fb.release(a.api)
		w.fb = nil
	}
	if w.dc != 0 {
		a.api.ReleaseDC(w.id, w.dc)
		w.dc = 0
	}
	a.removeWindow(w)
	if w.alive {
		delete(a.byID, w.id)
		w.alive = false
		errors.Log(a.api.DestroyWindow(w.id))
	}
}
