// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"image"

	"github.com/Sobeston/ZWL/system/native"
)

// The Post methods inject OS-side happenings into the message queue, in
// FIFO order with respect to each other. They model the events a real
// backend would receive from the user or the compositor.

// PostCloseRequest injects the user clicking the window close decoration.
func (s *Sim) PostCloseRequest(id native.WindowID) {
	s.post(native.Message{Window: id, Kind: native.CloseRequest})
}

// PostResize injects a user-driven client-area resize. The visible
// surface is recreated at the new size, as the compositor would.
func (s *Sim) PostResize(id native.WindowID, width, height int) {
	if w := s.windows[id]; w != nil && !w.destroyed {
		w.screen = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	s.post(native.Message{Window: id, Kind: native.Resized, Width: width, Height: height})
}

// PostPaint injects an OS-scheduled repaint, as after an occlusion.
func (s *Sim) PostPaint(id native.WindowID) {
	s.post(native.Message{Window: id, Kind: native.Paint})
}

// PostMouseMove injects pointer motion at the given client position.
func (s *Sim) PostMouseMove(id native.WindowID, x, y int) {
	s.post(native.Message{Window: id, Kind: native.MouseMove, X: x, Y: y})
}

// PostMouseButton injects a button press or release at the given position.
func (s *Sim) PostMouseButton(id native.WindowID, down bool, button int32, x, y int) {
	kind := native.MouseUp
	if down {
		kind = native.MouseDown
	}
	s.post(native.Message{Window: id, Kind: kind, Button: button, X: x, Y: y})
}

// PostKey injects a key press or release with the given scancode.
func (s *Sim) PostKey(id native.WindowID, down bool, scancode uint32) {
	kind := native.KeyUp
	if down {
		kind = native.KeyDown
	}
	s.post(native.Message{Window: id, Kind: kind, Scancode: scancode})
}

// Shutdown ends the message source; subsequent NextMessage calls report
// [native.ErrQueueDone] once the queue has drained its priority path.
func (s *Sim) Shutdown() {
	s.shutdown.Do(func() { close(s.done) })
}

// FailNextFramebuffer makes the next CreateFramebuffer call fail with the
// given error, for exercising the absorbed resize-failure path.
func (s *Sim) FailNextFramebuffer(err error) {
	s.fbErr = err
}

// Screen returns the visible surface of the given window: the pixels the
// most recent blit produced. It stays inspectable after destruction.
func (s *Sim) Screen(id native.WindowID) *image.RGBA {
	if w := s.windows[id]; w != nil {
		return w.screen
	}
	return nil
}

// Registered reports whether a window class is currently registered.
func (s *Sim) Registered() bool { return s.registered }

// Unregisters returns how many times UnregisterClass succeeded.
func (s *Sim) Unregisters() int { return s.unregisters }

// Shows returns how many times the window was shown.
func (s *Sim) Shows(id native.WindowID) int { return s.stat(id, func(w *window) int { return w.shows }) }

// Blits returns how many blits landed on the window surface.
func (s *Sim) Blits(id native.WindowID) int { return s.stat(id, func(w *window) int { return w.blits }) }

// Invalidates returns how many times the window surface was invalidated.
func (s *Sim) Invalidates(id native.WindowID) int {
	return s.stat(id, func(w *window) int { return w.invalidates })
}

// Destroys returns how many DestroyWindow calls targeted the window.
func (s *Sim) Destroys(id native.WindowID) int {
	return s.stat(id, func(w *window) int { return w.destroys })
}

func (s *Sim) stat(id native.WindowID, f func(*window) int) int {
	if w := s.windows[id]; w != nil {
		return f(w)
	}
	return 0
}
