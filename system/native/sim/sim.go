// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim provides a pure-Go in-memory implementation of [native.API]
// for offscreen operation and testing. The OS side of the contract is
// driven explicitly: tests inject resize, close, input, and paint messages
// with the Post methods and inspect the visible surface each window was
// last blitted to.
package sim

import (
	"image"
	"sync"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/base/logx"
	"github.com/Sobeston/ZWL/system/native"
	"golang.org/x/image/draw"
)

// Sim implements [native.API] in memory.
type Sim struct {
	proc        native.MessageProc
	className   string
	registered  bool
	unregisters int

	msgs     chan native.Message
	done     chan struct{}
	shutdown sync.Once

	order   []native.WindowID
	windows map[native.WindowID]*window
	bitmaps map[native.Bitmap]*image.RGBA
	nextWin native.WindowID
	nextBM  native.Bitmap

	fbErr error
}

// window is the OS-side state of one simulated window.
type window struct {
	cfg       native.WindowConfig
	destroyed bool
	visible   bool
	dirty     bool

	// screen is the visible surface blits land on, sized to the current
	// client area.
	screen *image.RGBA

	shows       int
	blits       int
	invalidates int
	destroys    int
}

var _ native.API = (*Sim)(nil)

// New returns a new simulated backend.
func New() *Sim {
	return &Sim{
		msgs:    make(chan native.Message, 256),
		done:    make(chan struct{}),
		windows: map[native.WindowID]*window{},
		bitmaps: map[native.Bitmap]*image.RGBA{},
	}
}

func (s *Sim) RegisterClass(name string, proc native.MessageProc) error {
	if s.registered {
		return errors.New("sim: window class already registered")
	}
	s.registered = true
	s.className = name
	s.proc = proc
	return nil
}

func (s *Sim) UnregisterClass() error {
	if !s.registered {
		return errors.New("sim: no registered window class")
	}
	s.registered = false
	s.unregisters++
	return nil
}

func (s *Sim) CreateWindow(cfg native.WindowConfig) (native.WindowID, error) {
	if !s.registered {
		return 0, errors.New("sim: create window without a registered class")
	}
	s.nextWin++
	id := s.nextWin
	s.windows[id] = &window{
		cfg:    cfg,
		screen: image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	s.order = append(s.order, id)
	return id, nil
}

// DestroyWindow marks the window destroyed and queues the Destroyed
// notification; like the real OS, the notification arrives as a separate
// dispatch, never synchronously from this call.
func (s *Sim) DestroyWindow(id native.WindowID) error {
	w := s.windows[id]
	if w == nil {
		return errors.New("sim: destroy of unknown window")
	}
	w.destroys++
	if w.destroyed {
		return errors.New("sim: destroy of already destroyed window")
	}
	w.destroyed = true
	s.post(native.Message{Window: id, Kind: native.Destroyed})
	return nil
}

func (s *Sim) ShowWindow(id native.WindowID, visible bool) {
	if w := s.windows[id]; w != nil && !w.destroyed {
		w.visible = visible
		if visible {
			w.shows++
		}
	}
}

// NextMessage returns the next queued message, synthesizing a Paint
// message for a dirty window only when the queue is empty, mirroring the
// lowest-priority scheduling of native paint messages. It blocks when
// nothing is pending and returns [native.ErrQueueDone] after [Sim.Shutdown].
func (s *Sim) NextMessage() (native.Message, error) {
	select {
	case m := <-s.msgs:
		return m, nil
	default:
	}
	for _, id := range s.order {
		if w := s.windows[id]; w.dirty && !w.destroyed {
			w.dirty = false
			return native.Message{Window: id, Kind: native.Paint}, nil
		}
	}
	select {
	case m := <-s.msgs:
		return m, nil
	case <-s.done:
		return native.Message{}, native.ErrQueueDone
	}
}

// DispatchMessage invokes the registered message proc. Unhandled close
// requests get the default handling of destroying the window; everything
// else unhandled is dropped with a diagnostic.
func (s *Sim) DispatchMessage(msg native.Message) {
	if s.proc != nil && s.proc(msg) {
		return
	}
	switch msg.Kind {
	case native.CloseRequest:
		errors.Log(s.DestroyWindow(msg.Window))
	default:
		logx.Debug("sim: message fell through to default handling", "kind", msg.Kind, "window", msg.Window)
	}
}

func (s *Sim) GetDC(id native.WindowID) (native.DC, error) {
	w := s.windows[id]
	if w == nil || w.destroyed {
		return 0, errors.New("sim: get device context of dead window")
	}
	return native.DC(id), nil
}

func (s *Sim) ReleaseDC(id native.WindowID, dc native.DC) {}

func (s *Sim) CreateFramebuffer(dc native.DC, width, height int) (native.Bitmap, *image.RGBA, error) {
	if s.fbErr != nil {
		err := s.fbErr
		s.fbErr = nil
		return 0, nil, err
	}
	s.nextBM++
	bm := s.nextBM
	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	s.bitmaps[bm] = pix
	return bm, pix, nil
}

func (s *Sim) DeleteFramebuffer(b native.Bitmap) {
	delete(s.bitmaps, b)
}

// Blit copies the bitmap content onto the window's visible surface.
func (s *Sim) Blit(dc native.DC, b native.Bitmap, width, height int) error {
	w := s.windows[native.WindowID(dc)]
	if w == nil || w.destroyed {
		return errors.New("sim: blit to dead window")
	}
	src := s.bitmaps[b]
	if src == nil {
		return errors.New("sim: blit of deleted bitmap")
	}
	draw.Copy(w.screen, image.Point{}, src, image.Rect(0, 0, width, height), draw.Src, nil)
	w.blits++
	return nil
}

func (s *Sim) Invalidate(id native.WindowID) {
	if w := s.windows[id]; w != nil && !w.destroyed {
		w.dirty = true
		w.invalidates++
	}
}

func (s *Sim) post(msg native.Message) {
	select {
	case s.msgs <- msg:
	default:
		logx.Warn("sim: message queue full, dropping message", "kind", msg.Kind)
	}
}
