// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the uniform, OS-independent event model delivered
// by the windowing system. Native window messages are translated into
// exactly one event each, queued in arrival order, and drained one at a
// time by the application.
package events

import (
	"fmt"
	"image"
	"time"
)

// Window is the windowing surface an event originates from. It is
// implemented by system.Window; events only need the size accessor, which
// stays valid even after the underlying OS window has been destroyed.
type Window interface {
	Size() image.Point
}

// Event is the interface for all events.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	fmt.Stringer
}

// Base is the base type for all events, providing the type and generation
// time. Concrete events embed it and add their payload fields.
type Base struct {
	Typ     Types
	GenTime time.Time
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) String() string {
	return ev.Typ.String()
}

func newBase(typ Types) Base {
	return Base{Typ: typ, GenTime: time.Now()}
}

// WindowEvent is a window lifecycle or paint event: [WindowClose],
// [WindowResize], or [WindowPaint]. Win is the window it refers to.
type WindowEvent struct {
	Base

	// Win is the window the event refers to.
	Win Window
}

func (ev *WindowEvent) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Win.Size())
}

// NewWindowClose returns a [WindowClose] event for the given window.
func NewWindowClose(win Window) *WindowEvent {
	return &WindowEvent{Base: newBase(WindowClose), Win: win}
}

// NewWindowResize returns a [WindowResize] event for the given window.
func NewWindowResize(win Window) *WindowEvent {
	return &WindowEvent{Base: newBase(WindowResize), Win: win}
}

// NewWindowPaint returns a [WindowPaint] event for the given window.
func NewWindowPaint(win Window) *WindowEvent {
	return &WindowEvent{Base: newBase(WindowPaint), Win: win}
}

// Mouse is a pointer event: [MouseMove], [MouseDown], or [MouseUp].
type Mouse struct {
	Base

	// Where is the pointer position in client-area pixels.
	Where image.Point

	// Button is the button involved, [NoButton] for pure motion.
	Button Buttons
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: %v, Button: %v}", ev.Typ, ev.Where, ev.Button)
}

// NewMouseMove returns a [MouseMove] event at the given position.
func NewMouseMove(where image.Point) *Mouse {
	return &Mouse{Base: newBase(MouseMove), Where: where, Button: NoButton}
}

// NewMouseDown returns a [MouseDown] event for the given button and position.
func NewMouseDown(but Buttons, where image.Point) *Mouse {
	return &Mouse{Base: newBase(MouseDown), Where: where, Button: but}
}

// NewMouseUp returns a [MouseUp] event for the given button and position.
func NewMouseUp(but Buttons, where image.Point) *Mouse {
	return &Mouse{Base: newBase(MouseUp), Where: where, Button: but}
}

// Key is a keyboard event: [KeyDown] or [KeyUp]. It carries the raw
// hardware scancode as delivered by the native message; no layout
// translation is applied at this layer.
type Key struct {
	Base

	// Scancode is the raw hardware scancode.
	Scancode uint32
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Scancode: %d}", ev.Typ, ev.Scancode)
}

// NewKeyDown returns a [KeyDown] event for the given scancode.
func NewKeyDown(scancode uint32) *Key {
	return &Key{Base: newBase(KeyDown), Scancode: scancode}
}

// NewKeyUp returns a [KeyUp] event for the given scancode.
func NewKeyUp(scancode uint32) *Key {
	return &Key{Base: newBase(KeyUp), Scancode: scancode}
}

// QuitEvent is the [Quit] event, sent when the native message source has
// shut down.
type QuitEvent struct {
	Base
}

// NewQuit returns a [Quit] event.
func NewQuit() *QuitEvent {
	return &QuitEvent{Base: newBase(Quit)}
}
