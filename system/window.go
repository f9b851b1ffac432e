// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// Window is a single OS window with a software framebuffer. The native OS
// handle behind a Window can be destroyed out-of-band at any time (the
// user clicks the close decoration); the wrapper detects that through the
// [events.WindowClose] event and remains safe to query and to [Window.Close]
// afterwards.
type Window interface {

	// Size returns the current client-area size in pixels. It returns the
	// cached size kept in sync by the resize-notification path and never
	// queries the OS, so it stays valid after the native window is gone.
	Size() image.Point

	// Pixels returns a live view of the window's framebuffer: 32 bits per
	// pixel, row-major, top-down. The caller writes pixels in place; there
	// is no copy. The view is valid until the next resize or Close.
	//
	// The channel ordering within each 32-bit pixel is the backend's
	// native layout.
	Pixels() *image.RGBA

	// Present marks the window surface as needing repaint. The pixel
	// content becomes visible at the next paint cycle, signaled by an
	// [events.WindowPaint] event. The current backends invalidate the
	// entire surface regardless of the regions passed. Present is a
	// silent no-op once the native window has been destroyed.
	Present(regions ...image.Rectangle)

	// Title returns the window title given at creation.
	Title() string

	// Configure reconfigures the window post-creation. It is reserved and
	// currently always fails with [ErrUnimplemented], with no side effect.
	Configure(opts *NewWindowOptions) error

	// Close releases the framebuffer and device context and, if the native
	// window still exists, destroys it. Close is safe to call whether or
	// not the OS already destroyed the window out-of-band, and is
	// idempotent.
	Close()
}

// NewWindowOptions are the options for creating a new window. All fields
// are optional with the stated defaults.
type NewWindowOptions struct {

	// Size is the requested client-area size in pixels. Non-positive axes
	// default to 800 x 600.
	Size image.Point

	// Title is the window title text. Defaults to empty.
	Title string

	// Visible shows the window immediately after creation.
	Visible bool

	// Decorated gives the window a title bar and minimize, maximize, and
	// close controls.
	Decorated bool

	// Resizable lets the user resize the window.
	Resizable bool
}

// Defaults fills in zero-valued size fields with the default 800 x 600.
func (o *NewWindowOptions) Defaults() {
	if o.Size.X <= 0 {
		o.Size.X = 800
	}
	if o.Size.Y <= 0 {
		o.Size.Y = 600
	}
}
