// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue. It must be
// initialized using [Queue.Init] before use.
//
// It replaces a single pending-event slot between the native message
// callback and the blocking event retrieval call: the callback may produce
// several semantically distinct events within one dispatch cycle, and a
// one-slot buffer would have to overwrite or drop all but the last of
// them. A FIFO preserves native arrival order without loss.
type Queue struct {
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Uint64
}

// Init initializes the queue with its sentinel node.
func (q *Queue) Init() {
	head := &queueNode{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	v    Event
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	var first, last, firstnext *queueNode
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return nil
				}
				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					queueNodePool.Put(first)
					return v
				}
			}
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	n := queueNodePool.Get().(*queueNode)
	n.next.Store(nil)
	n.v = ev

	var last, lastnext *queueNode
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, n) {
					q.tail.CompareAndSwap(last, n)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
