// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge implements [system.App] on top of a [native.API] backend.
// It is the event-bridging and window-lifecycle layer: the OS pushes window
// messages into a callback at a time of its choosing, while the application
// pulls events one at a time through a blocking call. The bridge reconciles
// the two by pumping the native message queue inside [App.WaitEvent] and
// buffering the translated events in a FIFO queue drained front-to-back.
package bridge

import (
	"fmt"
	"image"
	"slices"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/events"
	"github.com/Sobeston/ZWL/system"
	"github.com/Sobeston/ZWL/system/native"
)

// AppOptions are the options for [New]. A nil AppOptions is valid and
// means to use the default values.
type AppOptions struct {

	// ClassName is the name under which the window class is registered.
	// Defaults to "zwl-window".
	ClassName string
}

func (o *AppOptions) defaults() {
	if o.ClassName == "" {
		o.ClassName = "zwl-window"
	}
}

// App implements [system.App] over a [native.API]. It owns the registered
// window-class identity, the list of live windows, the handle-to-window
// lookup table, and the queue of translated events awaiting delivery.
//
// All state is touched only from the goroutine calling the App methods:
// the native message callback runs synchronously inside [App.WaitEvent],
// so there is exactly one execution context and no locking.
type App struct {
	api  native.API
	opts AppOptions

	// windows are the live window wrappers, in order of creation.
	windows []*Window

	// byID resolves a native handle to its owning window. It is lookup
	// only, never ownership: entries are added at window creation and
	// removed when the handle goes away, whether by Close or by the OS.
	byID map[native.WindowID]*Window

	// queue holds translated events between the message callback that
	// produces them and WaitEvent, which drains them in FIFO order.
	queue events.Queue

	released bool
}

var _ system.App = (*App)(nil)

// New connects to the given backend and registers the window class,
// returning an error wrapping [system.ErrRegisterClass] if the OS refuses.
func New(api native.API, opts *AppOptions) (*App, error) {
	if opts == nil {
		opts = &AppOptions{}
	}
	opts.defaults()
	a := &App{
		api:  api,
		opts: *opts,
		byID: map[native.WindowID]*Window{},
	}
	a.queue.Init()
	if err := api.RegisterClass(opts.ClassName, a.windowProc); err != nil {
		return nil, fmt.Errorf("bridge: register window class %q: %w: %w", opts.ClassName, system.ErrRegisterClass, err)
	}
	return a, nil
}

// WaitEvent blocks until the next event is available and returns it.
//
// If the queue already holds an undelivered event, it is returned
// immediately with no native call. Otherwise WaitEvent retrieves the next
// native message (blocking while the OS queue is empty) and dispatches it,
// which synchronously runs the message callback and may enqueue translated
// events; it loops until the queue is non-empty. Queue shutdown is
// reported as an [events.Quit] event.
func (a *App) WaitEvent() (events.Event, error) {
	for {
		if ev := a.queue.NextEvent(); ev != nil {
			return ev, nil
		}
		msg, err := a.api.NextMessage()
		if errors.Is(err, native.ErrQueueDone) {
			return events.NewQuit(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("bridge: retrieve native message: %w", err)
		}
		a.api.DispatchMessage(msg)
	}
}

// windowProc is the message callback registered with the window class. It
// is invoked only by [native.API.DispatchMessage], never directly. It
// never blocks and allocates only on the resize path.
func (a *App) windowProc(msg native.Message) bool {
	w := a.byID[msg.Window]
	if w == nil {
		// No window resolvable: the handle was never ours or is already
		// torn down. Let the backend's default handling take it.
		return false
	}
	switch msg.Kind {
	case native.CloseRequest:
		// Ask the OS to destroy the handle; the resulting Destroyed
		// notification emits the event in a later dispatch.
		errors.Log(a.api.DestroyWindow(w.id))
		return true
	case native.Destroyed:
		delete(a.byID, w.id)
		w.alive = false
		a.queue.Send(events.NewWindowClose(w))
		return true
	case native.Resized:
		a.resize(w, image.Pt(msg.Width, msg.Height))
		return true
	case native.Paint:
		a.paint(w)
		return true
	case native.MouseMove:
		a.queue.Send(events.NewMouseMove(image.Pt(msg.X, msg.Y)))
		return true
	case native.MouseDown:
		a.queue.Send(events.NewMouseDown(buttonFor(msg.Button), image.Pt(msg.X, msg.Y)))
		return true
	case native.MouseUp:
		a.queue.Send(events.NewMouseUp(buttonFor(msg.Button), image.Pt(msg.X, msg.Y)))
		return true
	case native.KeyDown:
		a.queue.Send(events.NewKeyDown(msg.Scancode))
		return true
	case native.KeyUp:
		a.queue.Send(events.NewKeyUp(msg.Scancode))
		return true
	}
	return false
}

// resize rebuilds the window's framebuffer at the new client-area size.
// Failure to allocate the new framebuffer is fatal to this resize but not
// to the process: it is logged, recorded on the window, and the previous
// framebuffer stays in use, so the window keeps its last good content
// until the next successful resize.
func (a *App) resize(w *Window, size image.Point) {
	if w.size == size {
		return
	}
	fb, err := newFramebuffer(a.api, w.dc, size)
	if err != nil {
		w.lastResizeErr = err
		errors.Log(fmt.Errorf("bridge: rebuild framebuffer at %v: %w", size, err))
		return
	}
	w.lastResizeErr = nil
	w.fb.release(a.api)
	w.fb = fb
	w.size = size
	a.queue.Send(events.NewWindowResize(w))
}

// paint blits the framebuffer's current pixel content onto the visible
// surface. This is the sole point at which pixels become visible.
func (a *App) paint(w *Window) {
	if !w.alive || w.fb == nil {
		return
	}
	if err := a.api.Blit(w.dc, w.fb.bitmap, w.size.X, w.size.Y); err != nil {
		errors.Log(fmt.Errorf("bridge: blit framebuffer: %w", err))
		return
	}
	a.queue.Send(events.NewWindowPaint(w))
}

func buttonFor(b int32) events.Buttons {
	switch b {
	case native.ButtonLeft:
		return events.Left
	case native.ButtonMiddle:
		return events.Middle
	case native.ButtonRight:
		return events.Right
	}
	return events.NoButton
}

func (a *App) NWindows() int {
	return len(a.windows)
}

func (a *App) Window(win int) system.Window {
	if win < 0 || win >= len(a.windows) {
		return nil
	}
	return a.windows[win]
}

func (a *App) removeWindow(w *Window) {
	a.windows = slices.DeleteFunc(a.windows, func(ew *Window) bool {
		return ew == w
	})
}

// Release unregisters the window class. It must be called after all
// windows are closed; teardown is child-first.
func (a *App) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	return a.api.UnregisterClass()
}
