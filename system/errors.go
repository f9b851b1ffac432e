// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "errors"

var (
	// ErrRegisterClass indicates that the process-wide window-class
	// registration was refused by the OS. It is fatal to app creation and
	// not recoverable; the caller must abort use of the windowing system.
	ErrRegisterClass = errors.New("window class registration failed")

	// ErrCreateWindow indicates that acquiring the native window handle or
	// its device context failed. It is fatal only to the NewWindow call
	// that reported it; no partial window is left allocated.
	ErrCreateWindow = errors.New("native window creation failed")

	// ErrCreateBitmap indicates that framebuffer allocation failed. At
	// window creation it fails the NewWindow call with full rollback.
	// During a resize it is absorbed and logged instead, and the previous
	// framebuffer remains in use.
	ErrCreateBitmap = errors.New("framebuffer bitmap creation failed")

	// ErrUnimplemented indicates a feature that is not yet supported. The
	// failing call has no side effect.
	ErrUnimplemented = errors.New("unimplemented")
)
