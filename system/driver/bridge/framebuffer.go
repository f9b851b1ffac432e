// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"fmt"
	"image"

	"github.com/Sobeston/ZWL/system"
	"github.com/Sobeston/ZWL/system/native"
)

// framebuffer is a native bitmap bound to a device context plus a live
// view of its pixel storage: 32 bits per pixel, row-major, top-down. Its
// dimensions always equal the owning window's cached size once a resize
// has been fully processed.
//
// A framebuffer is created at window creation and on every resize; old
// content is never preserved across a resize, the application redraws in
// response to the resize event.
type framebuffer struct {
	bitmap native.Bitmap
	pix    *image.RGBA
	size   image.Point
}

func newFramebuffer(api native.API, dc native.DC, size image.Point) (*framebuffer, error) {
	bm, pix, err := api.CreateFramebuffer(dc, size.X, size.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", system.ErrCreateBitmap, err)
	}
	return &framebuffer{bitmap: bm, pix: pix, size: size}, nil
}

// release frees the bitmap resource. The framebuffer must not be used
// afterwards; the pixel view it handed out is invalid.
func (f *framebuffer) release(api native.API) {
	api.DeleteFramebuffer(f.bitmap)
	f.pix = nil
}
