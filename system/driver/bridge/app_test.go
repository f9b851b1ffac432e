// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"image"
	"testing"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/events"
	"github.com/Sobeston/ZWL/system"
	"github.com/Sobeston/ZWL/system/native"
	"github.com/Sobeston/ZWL/system/native/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *sim.Sim) {
	t.Helper()
	s := sim.New()
	a, err := New(s, nil)
	require.NoError(t, err)
	return a, s
}

func newTestWindow(t *testing.T, a *App, opts *system.NewWindowOptions) (*Window, native.WindowID) {
	t.Helper()
	sw, err := a.NewWindow(opts)
	require.NoError(t, err)
	w := sw.(*Window)
	return w, w.id
}

func TestRegisterClassFailure(t *testing.T) {
	s := sim.New()
	_, err := New(s, nil)
	require.NoError(t, err)

	_, err = New(s, nil) // second registration on the same backend
	require.Error(t, err)
	assert.True(t, errors.Is(err, system.ErrRegisterClass))
}

func TestReleaseUnregistersOnce(t *testing.T) {
	a, s := newTestApp(t)
	assert.True(t, s.Registered())

	require.NoError(t, a.Release())
	assert.Equal(t, 1, s.Unregisters())
	assert.False(t, s.Registered())

	require.NoError(t, a.Release())
	assert.Equal(t, 1, s.Unregisters())
}

func TestEventOrder(t *testing.T) {
	a, s := newTestApp(t)
	w, id := newTestWindow(t, a, nil)

	s.PostResize(id, 640, 480)
	s.PostPaint(id)
	s.PostMouseMove(id, 10, 20)

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.WindowResize, ev.Type())
	assert.Same(t, w, ev.(*events.WindowEvent).Win)
	assert.Equal(t, image.Pt(640, 480), w.Size())

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.WindowPaint, ev.Type())
	assert.Same(t, w, ev.(*events.WindowEvent).Win)

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.MouseMove, ev.Type())
	assert.Equal(t, image.Pt(10, 20), ev.(*events.Mouse).Where)

	assert.Zero(t, a.queue.Len(), "no event may be dropped or duplicated")
}

func TestInputEvents(t *testing.T) {
	a, s := newTestApp(t)
	_, id := newTestWindow(t, a, nil)

	s.PostMouseButton(id, true, native.ButtonRight, 3, 4)
	s.PostMouseButton(id, false, native.ButtonRight, 3, 4)
	s.PostKey(id, true, 0x2a)
	s.PostKey(id, false, 0x2a)

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.MouseDown, ev.Type())
	m := ev.(*events.Mouse)
	assert.Equal(t, events.Right, m.Button)
	assert.Equal(t, image.Pt(3, 4), m.Where)

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.MouseUp, ev.Type())

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.KeyDown, ev.Type())
	assert.Equal(t, uint32(0x2a), ev.(*events.Key).Scancode)

	ev, err = a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.KeyUp, ev.Type())
	assert.Equal(t, uint32(0x2a), ev.(*events.Key).Scancode)
}

func TestUnresolvableWindowFallsThrough(t *testing.T) {
	a, s := newTestApp(t)
	_, id := newTestWindow(t, a, nil)

	s.PostMouseMove(native.WindowID(9999), 1, 1) // never one of ours
	s.PostMouseMove(id, 5, 6)

	ev, err := a.WaitEvent()
	require.NoError(t, err)
	require.Equal(t, events.MouseMove, ev.Type())
	assert.Equal(t, image.Pt(5, 6), ev.(*events.Mouse).Where)
}

func TestQuitOnQueueShutdown(t *testing.T) {
	a, s := newTestApp(t)

	s.Shutdown()
	ev, err := a.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, events.Quit, ev.Type())
}

func TestWindowAccessors(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, 0, a.NWindows())
	assert.Nil(t, a.Window(0))

	w1, _ := newTestWindow(t, a, nil)
	w2, _ := newTestWindow(t, a, nil)
	assert.Equal(t, 2, a.NWindows())
	assert.Same(t, w1, a.Window(0))
	assert.Same(t, w2, a.Window(1))
	assert.Nil(t, a.Window(2))

	w1.Close()
	assert.Equal(t, 1, a.NWindows())
	assert.Same(t, w2, a.Window(0))
}
