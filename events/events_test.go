// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSizeWindow image.Point

func (w fixedSizeWindow) Size() image.Point { return image.Point(w) }

func TestWindowEvents(t *testing.T) {
	win := fixedSizeWindow(image.Pt(640, 480))

	for typ, ev := range map[Types]*WindowEvent{
		WindowClose:  NewWindowClose(win),
		WindowResize: NewWindowResize(win),
		WindowPaint:  NewWindowPaint(win),
	} {
		assert.Equal(t, typ, ev.Type())
		assert.Equal(t, win, ev.Win)
		assert.False(t, ev.Time().IsZero())
		assert.Contains(t, ev.String(), typ.String())
		assert.Contains(t, ev.String(), "(640,480)")
	}
}

func TestMouseEvents(t *testing.T) {
	mv := NewMouseMove(image.Pt(10, 20))
	assert.Equal(t, MouseMove, mv.Type())
	assert.Equal(t, image.Pt(10, 20), mv.Where)
	assert.Equal(t, NoButton, mv.Button)

	dn := NewMouseDown(Right, image.Pt(1, 2))
	assert.Equal(t, MouseDown, dn.Type())
	assert.Equal(t, Right, dn.Button)
	assert.Contains(t, dn.String(), "Right")

	up := NewMouseUp(Left, image.Pt(1, 2))
	assert.Equal(t, MouseUp, up.Type())
	assert.Equal(t, Left, up.Button)
}

func TestKeyEvents(t *testing.T) {
	dn := NewKeyDown(0x1c)
	assert.Equal(t, KeyDown, dn.Type())
	assert.Equal(t, uint32(0x1c), dn.Scancode)
	assert.Contains(t, dn.String(), "28")

	up := NewKeyUp(0x1c)
	assert.Equal(t, KeyUp, up.Type())
	assert.Equal(t, uint32(0x1c), up.Scancode)
}

func TestQuitEvent(t *testing.T) {
	ev := NewQuit()
	assert.Equal(t, Quit, ev.Type())
	assert.Equal(t, "Quit", ev.String())
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "WindowResize", WindowResize.String())
	assert.Equal(t, "MouseDown", MouseDown.String())
	assert.Equal(t, "UnknownType", UnknownType.String())
}
