// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/Sobeston/ZWL/system/native"
	"github.com/Sobeston/ZWL/system/native/sim"
	"github.com/Sobeston/ZWL/system/native/x11"
)

func open() (native.API, error) {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		return sim.New(), nil
	}
	return x11.Open()
}
