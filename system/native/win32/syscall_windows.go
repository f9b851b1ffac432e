// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"golang.org/x/sys/windows"
)

const (
	_WS_OVERLAPPED  = 0x00000000
	_WS_POPUP       = 0x80000000
	_WS_CAPTION     = 0x00C00000
	_WS_SYSMENU     = 0x00080000
	_WS_THICKFRAME  = 0x00040000
	_WS_MINIMIZEBOX = 0x00020000
	_WS_MAXIMIZEBOX = 0x00010000

	_CS_VREDRAW = 0x0001
	_CS_HREDRAW = 0x0002

	_SW_HIDE = 0
	_SW_SHOW = 5

	_WM_DESTROY     = 0x0002
	_WM_SIZE        = 0x0005
	_WM_PAINT       = 0x000F
	_WM_CLOSE       = 0x0010
	_WM_KEYDOWN     = 0x0100
	_WM_KEYUP       = 0x0101
	_WM_MOUSEMOVE   = 0x0200
	_WM_LBUTTONDOWN = 0x0201
	_WM_LBUTTONUP   = 0x0202
	_WM_RBUTTONDOWN = 0x0204
	_WM_RBUTTONUP   = 0x0205
	_WM_MBUTTONDOWN = 0x0207
	_WM_MBUTTONUP   = 0x0208

	_SIZE_MINIMIZED = 1

	_BI_RGB         = 0
	_DIB_RGB_COLORS = 0
	_SRCCOPY        = 0x00CC0020

	_IDC_ARROW = 32512
)

type _WndClassExW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type _Point struct {
	X, Y int32
}

type _Msg struct {
	HWnd     windows.Handle
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       _Point
	LPrivate uint32
}

type _Rect struct {
	Left, Top, Right, Bottom int32
}

type _PaintStruct struct {
	Hdc         windows.Handle
	FErase      int32
	RcPaint     _Rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

type _BitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type _BitmapInfo struct {
	BmiHeader _BitmapInfoHeader
	BmiColors [1]uint32
}

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procUnregisterClassW = user32.NewProc("UnregisterClassW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procAdjustWindowRect = user32.NewProc("AdjustWindowRect")
	procGetDC            = user32.NewProc("GetDC")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procInvalidateRect   = user32.NewProc("InvalidateRect")
	procBeginPaint       = user32.NewProc("BeginPaint")
	procEndPaint         = user32.NewProc("EndPaint")
	procLoadCursorW      = user32.NewProc("LoadCursorW")

	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procBitBlt             = gdi32.NewProc("BitBlt")
)

func loword(v uintptr) int {
	return int(int16(uint16(v)))
}

func hiword(v uintptr) int {
	return int(int16(uint16(v >> 16)))
}
