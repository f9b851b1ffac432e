// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the OS-independent windowing interface: creating
// windows, receiving input and lifecycle events, and drawing into a
// CPU-side pixel buffer. Each supported operating system backend implements
// this interface against its native windowing primitives.
package system

import (
	"github.com/Sobeston/ZWL/events"
)

// App is the connection to the native windowing system. One App is created
// per process; it owns the process-wide native message loop and the
// window-class registration shared by all of its windows.
//
// All App and [Window] methods must be called from a single goroutine.
// The event bridge runs the native message callback synchronously inside
// [App.WaitEvent], so no other execution context ever touches windowing
// state and no locking is needed or performed.
type App interface {

	// NewWindow returns a new [Window] with the given options. A nil opts
	// is valid and means to use the default option values. On error, no
	// partially constructed window is left behind.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// WaitEvent blocks until the next event is available and returns it.
	// Events are delivered in the order the underlying native messages
	// arrived. After an [events.Quit] event, the native message source has
	// shut down and WaitEvent must not be called again.
	WaitEvent() (events.Event, error)

	// NWindows returns the number of live windows.
	NWindows() int

	// Window returns the window at the given index in the app's list of
	// windows, in order of creation, or nil for an invalid index.
	Window(win int) Window

	// Release tears down the app, undoing the process-wide window-class
	// registration exactly once. All windows must be closed before calling
	// Release; closing a window after Release is undefined.
	Release() error
}
