// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"image"
	"image/color"
	"testing"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/events"
	"github.com/Sobeston/ZWL/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowDefaults(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)

	assert.Equal(t, image.Pt(800, 600), w.Size())
	assert.Equal(t, image.Rect(0, 0, 800, 600), w.Pixels().Bounds())
	assert.Equal(t, "", w.Title())
	assert.Equal(t, 0, s.Shows(id), "windows start hidden unless asked")
}

func TestNewWindowOptions(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, &system.NewWindowOptions{
		Size:    image.Pt(320, 240),
		Title:   "probe",
		Visible: true,
	})

	assert.Equal(t, image.Pt(320, 240), w.Size())
	assert.Equal(t, image.Rect(0, 0, 320, 240), w.Pixels().Bounds())
	assert.Equal(t, "probe", w.Title())
	assert.Equal(t, 1, s.Shows(id))
	assert.Equal(t, 0, s.Blits(id), "creation must not paint")
}

func TestNewWindowHiddenRoundTrip(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, &system.NewWindowOptions{Size: image.Pt(320, 240)})

	assert.Equal(t, image.Pt(320, 240), w.Size())
	assert.Equal(t, 0, s.Shows(id), "hidden creation must not show")
	assert.Equal(t, 0, s.Blits(id), "creation must not paint")
	assert.Equal(t, 0, s.Invalidates(id))
	assert.Zero(t, a.queue.Len())
}

func TestNewWindowRollback(t *testing.T) {
	a, s := newTestApp(t)

	failure := errors.New("bitmap storage exhausted")
	s.FailNextFramebuffer(failure)
	_, err := a.NewWindow(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, system.ErrCreateBitmap))
	assert.True(t, errors.Is(err, failure))
	assert.Equal(t, 0, a.NWindows())
	assert.Equal(t, 1, s.Destroys(1), "half-built native window must be torn down")
}

func TestResizeRebuildsFramebuffer(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)
	before := w.Pixels()

	for _, size := range []image.Point{{1024, 768}, {200, 100}, {1, 1}} {
		s.PostResize(id, size.X, size.Y)
		ev, err := a.WaitEvent()
		require.NoError(t, err)
		require.Equal(t, events.WindowResize, ev.Type())
		assert.Equal(t, size, w.Size())
		assert.Equal(t, image.Rectangle{Max: size}, w.Pixels().Bounds())
		assert.NoError(t, w.lastResizeErr)
	}
	assert.NotSame(t, before, w.Pixels())
}

func TestResizeToSameSizeIsNoOp(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)
	before := w.Pixels()

	s.PostResize(id, 800, 600)
	s.PostMouseMove(id, 0, 0) // sentinel so WaitEvent has something to return

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.MouseMove, ev.Type(), "same-size resize must not emit an event")
	assert.Same(t, before, w.Pixels())
}

func TestResizeFailureKeepsOldFramebuffer(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)
	before := w.Pixels()

	failure := errors.New("bitmap storage exhausted")
	s.FailNextFramebuffer(failure)
	s.PostResize(id, 1920, 1080)
	s.PostMouseMove(id, 0, 0) // sentinel

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.MouseMove, ev.Type(), "failed resize must not emit a resize event")
	assert.Equal(t, image.Pt(800, 600), w.Size())
	assert.Same(t, before, w.Pixels(), "previous framebuffer stays in use")
	require.Error(t, w.lastResizeErr)
	assert.True(t, errors.Is(w.lastResizeErr, system.ErrCreateBitmap))
	assert.True(t, errors.Is(w.lastResizeErr, failure))

	// A later resize recovers.
	s.PostResize(id, 1920, 1080)
	ev, err = a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.WindowResize, ev.Type())
	assert.Equal(t, image.Pt(1920, 1080), w.Size())
	assert.NoError(t, w.lastResizeErr)
}

func TestPresentPaintsFullSurface(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, &system.NewWindowOptions{Size: image.Pt(4, 2)})

	pix := w.Pixels()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			pix.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x7f, A: 0xff})
		}
	}
	// Regions are advisory only; the whole surface is repainted.
	w.Present(image.Rect(1, 0, 2, 1))
	assert.Equal(t, 1, s.Invalidates(id))
	assert.Equal(t, 0, s.Blits(id), "pixels must not appear before the paint message")

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.WindowPaint, ev.Type())
	assert.Equal(t, 1, s.Blits(id))
	assert.Equal(t, pix.Pix, s.Screen(id).Pix)
}

func TestPresentCoalesces(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)

	w.Present()
	w.Present()
	w.Present()
	s.PostMouseMove(id, 0, 0)

	// The queued mouse message outranks the synthesized paint.
	ev, err := a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.MouseMove, ev.Type())

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.WindowPaint, ev.Type())
	assert.Equal(t, 1, s.Blits(id), "repeated invalidation coalesces into one paint")
	assert.Equal(t, 3, s.Invalidates(id))
}

func TestCloseRequestDestroysAndNotifies(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)

	s.PostCloseRequest(id)
	ev, err := a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.WindowClose, ev.Type())
	assert.Same(t, w, ev.(*events.WindowEvent).Win)
	assert.Equal(t, 1, s.Destroys(id))

	// The handle is gone: Size stays readable, everything else is inert.
	assert.False(t, w.alive)
	assert.Equal(t, image.Pt(800, 600), w.Size())
	w.Present()
	assert.Equal(t, 0, s.Invalidates(id), "present after destruction must not touch the OS")

	w.Close()
	assert.Equal(t, 1, s.Destroys(id), "close after destruction must not destroy again")
	assert.Equal(t, 0, a.NWindows())
	assert.Nil(t, w.Pixels())
}

func TestCloseIsIdempotent(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)

	w.Close()
	w.Close()
	assert.Equal(t, 1, s.Destroys(id))
	assert.Equal(t, 0, a.NWindows())
	assert.Nil(t, w.Pixels())
	assert.False(t, w.alive)

	// The OS-side Destroyed notification for our own destroy finds no
	// bound window and must not emit a close event.
	s.PostMouseMove(id, 0, 0)
	s.Shutdown()
	ev, err := a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.Quit, ev.Type())
}

func TestConfigureUnimplemented(t *testing.T) {
	a, _ := newTestApp(t)
	w, _ := newTestWindow(t, a, nil)

	err := w.Configure(&system.NewWindowOptions{Size: image.Pt(5, 5)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, system.ErrUnimplemented))
	assert.Equal(t, image.Pt(800, 600), w.Size())
}
