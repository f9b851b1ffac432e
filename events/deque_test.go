// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueEmpty(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Init()

	sent := []Event{
		NewMouseMove(image.Pt(1, 2)),
		NewKeyDown(0x2a),
		NewMouseDown(Left, image.Pt(3, 4)),
		NewQuit(),
	}
	for i, ev := range sent {
		q.Send(ev)
		assert.Equal(t, uint64(i+1), q.Len())
	}
	for i, want := range sent {
		got := q.NextEvent()
		require.NotNil(t, got)
		assert.Same(t, want, got, "event %d out of order", i)
	}
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueInterleaved(t *testing.T) {
	var q Queue
	q.Init()

	q.Send(NewKeyDown(1))
	q.Send(NewKeyDown(2))
	assert.Equal(t, uint32(1), q.NextEvent().(*Key).Scancode)
	q.Send(NewKeyDown(3))
	assert.Equal(t, uint32(2), q.NextEvent().(*Key).Scancode)
	assert.Equal(t, uint32(3), q.NextEvent().(*Key).Scancode)
	assert.Nil(t, q.NextEvent())
}

func TestQueueConcurrent(t *testing.T) {
	var q Queue
	q.Init()

	const senders = 4
	const perSender = 1000
	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				q.Send(NewKeyDown(uint32(i)))
			}
		}()
	}
	wg.Wait()

	n := 0
	for q.NextEvent() != nil {
		n++
	}
	assert.Equal(t, senders*perSender, n)
	assert.Equal(t, uint64(0), q.Len())
}
