// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of event. Exactly one event is produced per
// translated native window message, so the set of types is closed and
// mirrors the native message set: window lifecycle, paint ticks, pointer
// and key input, and application termination.
type Types int32

const (
	// UnknownType is the zero value, never delivered.
	UnknownType Types = iota

	// WindowClose is sent after the OS-level window has been destroyed,
	// whether by the application or by the user closing the window
	// decoration. The window wrapper remains readable but its native
	// handle is gone.
	WindowClose

	// WindowResize is sent after the window's client area changed size and
	// its framebuffer was rebuilt at the new dimensions.
	WindowResize

	// WindowPaint is sent once per native paint cycle, after the
	// framebuffer has been blitted to the visible surface. It serves as a
	// frame-presentation tick.
	WindowPaint

	// MouseMove is sent when the pointer moves within the client area.
	MouseMove

	// MouseDown is sent when a mouse button is pressed. See [Mouse.Button].
	MouseDown

	// MouseUp is sent when a mouse button is released. See [Mouse.Button].
	MouseUp

	// KeyDown is sent when a key is pressed, carrying the raw scancode.
	KeyDown

	// KeyUp is sent when a key is released, carrying the raw scancode.
	KeyUp

	// Quit is sent when the native message source has shut down for the
	// whole process. It is about the message loop ending, not about any
	// one window.
	Quit
)

func (t Types) String() string {
	switch t {
	case WindowClose:
		return "WindowClose"
	case WindowResize:
		return "WindowResize"
	case WindowPaint:
		return "WindowPaint"
	case MouseMove:
		return "MouseMove"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case Quit:
		return "Quit"
	}
	return "UnknownType"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}
