// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package win32 implements [native.API] against the Win32 windowing and
// GDI primitives: RegisterClassExW and a window procedure for message
// delivery, GetMessageW for the blocking queue, and a CreateDIBSection
// bitmap with BitBlt for the software framebuffer.
//
// Pixel layout within each 32-bit framebuffer value is the DIB-native
// BGRX order.
package win32

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/Sobeston/ZWL/base/errors"
	"github.com/Sobeston/ZWL/system/native"
	"golang.org/x/sys/windows"
)

// Win32 implements [native.API]. One Win32 exists per process: the window
// procedure is a process-global callback that routes through it.
type Win32 struct {
	proc      native.MessageProc
	className *uint16
	atom      uint16
	hInstance windows.Handle

	// cur is the message most recently retrieved by NextMessage; Win32
	// dispatch works on the raw MSG, so DispatchMessage replays cur
	// through the OS rather than the translated form.
	cur _Msg
}

var (
	theAPI      *Win32
	wndProcOnce sync.Once
	wndProcPtr  uintptr
)

var _ native.API = (*Win32)(nil)

// Open connects to the Win32 windowing system. It confines the caller to
// its OS thread: all window and message operations must stay on the
// thread that created the windows.
func Open() (*Win32, error) {
	runtime.LockOSThread()
	hInst, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("win32: get module handle: %w", err)
	}
	w := &Win32{hInstance: hInst}
	theAPI = w
	return w, nil
}

func (w *Win32) RegisterClass(name string, proc native.MessageProc) error {
	wndProcOnce.Do(func() {
		wndProcPtr = syscall.NewCallback(wndProc)
	})
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("win32: class name: %w", err)
	}
	cursor, _, _ := procLoadCursorW.Call(0, _IDC_ARROW)
	wc := _WndClassExW{
		Style:         _CS_HREDRAW | _CS_VREDRAW,
		LpfnWndProc:   wndProcPtr,
		HInstance:     w.hInstance,
		HCursor:       windows.Handle(cursor),
		LpszClassName: className,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("win32: RegisterClassExW: %w", callErr)
	}
	w.proc = proc
	w.className = className
	w.atom = uint16(atom)
	return nil
}

func (w *Win32) UnregisterClass() error {
	if w.atom == 0 {
		return errors.New("win32: no registered window class")
	}
	ok, _, callErr := procUnregisterClassW.Call(uintptr(unsafe.Pointer(w.className)), uintptr(w.hInstance))
	if ok == 0 {
		return fmt.Errorf("win32: UnregisterClassW: %w", callErr)
	}
	w.atom = 0
	return nil
}

func (w *Win32) CreateWindow(cfg native.WindowConfig) (native.WindowID, error) {
	style := uintptr(_WS_POPUP)
	if cfg.Decorated {
		style = _WS_OVERLAPPED | _WS_CAPTION | _WS_SYSMENU | _WS_MINIMIZEBOX
	}
	if cfg.Resizable {
		style |= _WS_THICKFRAME | _WS_MAXIMIZEBOX
	}

	// Size the outer window so the client area matches the request.
	r := _Rect{Right: int32(cfg.Width), Bottom: int32(cfg.Height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&r)), style, 0)

	title, err := windows.UTF16PtrFromString(cfg.Title)
	if err != nil {
		return 0, fmt.Errorf("win32: window title: %w", err)
	}
	const useDefault = 0x80000000 - 0x100000000 // CW_USEDEFAULT as signed int32
	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(w.className)),
		uintptr(unsafe.Pointer(title)),
		style,
		uintptr(int32(useDefault)), uintptr(int32(useDefault)),
		uintptr(r.Right-r.Left), uintptr(r.Bottom-r.Top),
		0, 0, uintptr(w.hInstance), 0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("win32: CreateWindowExW: %w", callErr)
	}
	return native.WindowID(hwnd), nil
}

func (w *Win32) DestroyWindow(id native.WindowID) error {
	ok, _, callErr := procDestroyWindow.Call(uintptr(id))
	if ok == 0 {
		return fmt.Errorf("win32: DestroyWindow: %w", callErr)
	}
	return nil
}

func (w *Win32) ShowWindow(id native.WindowID, visible bool) {
	cmd := uintptr(_SW_HIDE)
	if visible {
		cmd = _SW_SHOW
	}
	procShowWindow.Call(uintptr(id), cmd)
}

// NextMessage blocks in GetMessageW. The returned message is an opaque
// placeholder: Win32 can only dispatch the raw MSG it retrieved, so the
// translation to the uniform model happens inside the window procedure
// during DispatchMessage.
func (w *Win32) NextMessage() (native.Message, error) {
	ret, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&w.cur)), 0, 0, 0)
	switch int32(ret) {
	case 0: // WM_QUIT
		return native.Message{}, native.ErrQueueDone
	case -1:
		return native.Message{}, fmt.Errorf("win32: GetMessageW: %w", callErr)
	}
	return native.Message{Window: native.WindowID(w.cur.HWnd), Kind: native.Unknown}, nil
}

// DispatchMessage replays the message most recently retrieved by
// NextMessage through the OS, which synchronously invokes the window
// procedure registered with the class.
func (w *Win32) DispatchMessage(msg native.Message) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(&w.cur)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(&w.cur)))
}

// wndProc is the window procedure shared by all windows of the class. It
// maps the Win32 message onto the uniform message model and hands it to
// the registered proc; unhandled messages fall through to DefWindowProcW.
func wndProc(hwnd windows.Handle, message uint32, wParam, lParam uintptr) uintptr {
	w := theAPI
	if w == nil || w.proc == nil {
		ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
		return ret
	}
	msg := native.Message{Window: native.WindowID(hwnd)}
	switch message {
	case _WM_CLOSE:
		msg.Kind = native.CloseRequest
	case _WM_DESTROY:
		msg.Kind = native.Destroyed
	case _WM_SIZE:
		if wParam == _SIZE_MINIMIZED {
			return 0
		}
		msg.Kind = native.Resized
		msg.Width = loword(lParam)
		msg.Height = hiword(lParam)
	case _WM_PAINT:
		msg.Kind = native.Paint
	case _WM_MOUSEMOVE:
		msg.Kind = native.MouseMove
		msg.X, msg.Y = loword(lParam), hiword(lParam)
	case _WM_LBUTTONDOWN, _WM_MBUTTONDOWN, _WM_RBUTTONDOWN:
		msg.Kind = native.MouseDown
		msg.Button = buttonFor(message)
		msg.X, msg.Y = loword(lParam), hiword(lParam)
	case _WM_LBUTTONUP, _WM_MBUTTONUP, _WM_RBUTTONUP:
		msg.Kind = native.MouseUp
		msg.Button = buttonFor(message)
		msg.X, msg.Y = loword(lParam), hiword(lParam)
	case _WM_KEYDOWN:
		msg.Kind = native.KeyDown
		msg.Scancode = uint32(lParam>>16) & 0x1ff
	case _WM_KEYUP:
		msg.Kind = native.KeyUp
		msg.Scancode = uint32(lParam>>16) & 0x1ff
	default:
		ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
		return ret
	}

	if message == _WM_PAINT {
		// Bracket the blit with BeginPaint/EndPaint so the update region
		// is validated and the OS stops scheduling this paint.
		var ps _PaintStruct
		procBeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
		handled := w.proc(msg)
		procEndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
		if handled {
			return 0
		}
	} else if w.proc(msg) {
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return ret
}

func buttonFor(message uint32) int32 {
	switch message {
	case _WM_LBUTTONDOWN, _WM_LBUTTONUP:
		return native.ButtonLeft
	case _WM_MBUTTONDOWN, _WM_MBUTTONUP:
		return native.ButtonMiddle
	case _WM_RBUTTONDOWN, _WM_RBUTTONUP:
		return native.ButtonRight
	}
	return 0
}

func (w *Win32) GetDC(id native.WindowID) (native.DC, error) {
	dc, _, callErr := procGetDC.Call(uintptr(id))
	if dc == 0 {
		return 0, fmt.Errorf("win32: GetDC: %w", callErr)
	}
	return native.DC(dc), nil
}

func (w *Win32) ReleaseDC(id native.WindowID, dc native.DC) {
	procReleaseDC.Call(uintptr(id), uintptr(dc))
}

// CreateFramebuffer creates a top-down 32-bit DIB section bound to the
// device context and wraps its pixel memory in an image view. The memory
// belongs to the bitmap; the view dies with it.
func (w *Win32) CreateFramebuffer(dc native.DC, width, height int) (native.Bitmap, *image.RGBA, error) {
	bmi := _BitmapInfo{
		BmiHeader: _BitmapInfoHeader{
			BiWidth:       int32(width),
			BiHeight:      -int32(height), // negative height selects top-down rows
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: _BI_RGB,
		},
	}
	bmi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bmi.BmiHeader))
	var bits *byte
	bm, _, callErr := procCreateDIBSection.Call(
		uintptr(dc),
		uintptr(unsafe.Pointer(&bmi)),
		_DIB_RGB_COLORS,
		uintptr(unsafe.Pointer(&bits)),
		0, 0,
	)
	if bm == 0 {
		return 0, nil, fmt.Errorf("win32: CreateDIBSection %dx%d: %w", width, height, callErr)
	}
	pix := &image.RGBA{
		Pix:    unsafe.Slice(bits, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return native.Bitmap(bm), pix, nil
}

func (w *Win32) DeleteFramebuffer(b native.Bitmap) {
	procDeleteObject.Call(uintptr(b))
}

// Blit selects the bitmap into a memory device context compatible with
// the window's and block-copies it onto the visible surface.
func (w *Win32) Blit(dc native.DC, b native.Bitmap, width, height int) error {
	memDC, _, callErr := procCreateCompatibleDC.Call(uintptr(dc))
	if memDC == 0 {
		return fmt.Errorf("win32: CreateCompatibleDC: %w", callErr)
	}
	defer procDeleteDC.Call(memDC)
	prev, _, callErr := procSelectObject.Call(memDC, uintptr(b))
	if prev == 0 {
		return fmt.Errorf("win32: SelectObject: %w", callErr)
	}
	defer procSelectObject.Call(memDC, prev)
	ok, _, callErr := procBitBlt.Call(uintptr(dc), 0, 0, uintptr(width), uintptr(height), memDC, 0, 0, _SRCCOPY)
	if ok == 0 {
		return fmt.Errorf("win32: BitBlt: %w", callErr)
	}
	return nil
}

func (w *Win32) Invalidate(id native.WindowID) {
	procInvalidateRect.Call(uintptr(id), 0, 0)
}
