// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native defines the capability surface the event bridge consumes
// from an OS windowing backend: window-class registration, window and
// device-context lifetime, a blocking message queue, and bitmap blit
// primitives. Backends (win32, x11, sim) implement [API]; the bridge in
// system/driver/bridge is the only consumer.
package native

import (
	"errors"
	"image"
)

// ErrQueueDone is returned by [API.NextMessage] when the native message
// source has shut down for the whole process. The bridge translates it
// into an [events.Quit] event.
var ErrQueueDone = errors.New("native message queue shut down")

// WindowID is an opaque OS-issued identifier for a window. The bridge
// never interprets it; it only uses it as a lookup key and passes it back
// to the backend.
type WindowID uintptr

// DC is an opaque device context handle: a drawing surface bundled with
// its drawing state, required to perform a blit or bitmap selection.
type DC uintptr

// Bitmap is an opaque handle for a CPU-addressable bitmap bound to a
// device context.
type Bitmap uintptr

// MessageKind is the kind of a native window message, after the backend
// has mapped its OS message identifiers onto the uniform set the bridge
// understands.
type MessageKind int32

const (
	// Unknown is any message the backend has no mapping for. The bridge
	// leaves it to default handling.
	Unknown MessageKind = iota

	// CloseRequest is the user or OS asking for the window to close (the
	// close decoration was clicked). The window still exists.
	CloseRequest

	// Destroyed notifies that the OS-level window no longer exists.
	Destroyed

	// Resized notifies that the client area changed size; Width and
	// Height carry the new dimensions.
	Resized

	// Paint asks for the window content to be redrawn to the visible
	// surface. The OS schedules it after any invalidation, occlusion, or
	// resize.
	Paint

	// MouseMove, MouseDown, and MouseUp carry pointer position in X and Y,
	// and for the button messages the button involved.
	MouseMove
	MouseDown
	MouseUp

	// KeyDown and KeyUp carry the raw hardware scancode in Scancode.
	KeyDown
	KeyUp
)

// Message is one native window message in uniform form. Only the fields
// relevant to the Kind are set.
type Message struct {
	Window   WindowID
	Kind     MessageKind
	Width    int
	Height   int
	X        int
	Y        int
	Button   int32
	Scancode uint32
}

// Mouse buttons as encoded in [Message.Button].
const (
	ButtonLeft int32 = iota + 1
	ButtonMiddle
	ButtonRight
)

// MessageProc is the message callback registered with the window class.
// It is invoked synchronously by [API.DispatchMessage], never concurrently
// with itself, and must not block. It reports whether it handled the
// message; unhandled messages get the backend's default handling.
type MessageProc func(msg Message) (handled bool)

// WindowConfig is the configuration for creating a native window. Size is
// the client-area size; the backend adds decoration chrome around it as
// needed.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Decorated bool
	Resizable bool
}

// API is the fixed capability set a backend provides. All calls are
// fallible external calls; the bridge surfaces or absorbs failures per its
// error policy. Implementations need not be safe for concurrent use: the
// bridge drives them from a single goroutine.
type API interface {

	// RegisterClass performs the process-global window-class registration,
	// binding proc as the message callback for all windows of the class.
	// One registration per process; it must be undone exactly once with
	// UnregisterClass.
	RegisterClass(name string, proc MessageProc) error

	// UnregisterClass undoes RegisterClass.
	UnregisterClass() error

	// CreateWindow creates a native window sized so that its client area
	// matches the configured dimensions.
	CreateWindow(cfg WindowConfig) (WindowID, error)

	// DestroyWindow asks the OS to destroy the window. The Destroyed
	// notification is delivered through the message queue as a separate
	// dispatch, not synchronously from this call.
	DestroyWindow(id WindowID) error

	// ShowWindow shows or hides the window.
	ShowWindow(id WindowID, visible bool)

	// NextMessage blocks until a native message is queued and returns it.
	// It returns [ErrQueueDone] when the message source has shut down.
	NextMessage() (Message, error)

	// DispatchMessage translates and dispatches the message, synchronously
	// invoking the registered [MessageProc]. Messages the proc reports as
	// unhandled receive the backend's default handling.
	DispatchMessage(msg Message)

	// GetDC acquires the window's device context.
	GetDC(id WindowID) (DC, error)

	// ReleaseDC releases a device context acquired with GetDC.
	ReleaseDC(id WindowID, dc DC)

	// CreateFramebuffer creates a top-down, 32-bit-per-pixel, uncompressed
	// bitmap bound to the given device context, returning its handle and a
	// live view of its pixel storage. Pixel content is undefined until
	// written.
	CreateFramebuffer(dc DC, width, height int) (Bitmap, *image.RGBA, error)

	// DeleteFramebuffer releases a bitmap created with CreateFramebuffer.
	// The pixel view returned at creation becomes invalid.
	DeleteFramebuffer(b Bitmap)

	// Blit copies the bitmap's current pixel content onto the window
	// surface behind dc: a select-then-copy against the native blit
	// primitive, covering width x height from the origin.
	Blit(dc DC, b Bitmap, width, height int) error

	// Invalidate marks the window's entire surface as needing repaint,
	// causing the OS to schedule a Paint message.
	Invalidate(id WindowID)
}
