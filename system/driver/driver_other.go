// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows && !linux

package driver

import (
	"github.com/Sobeston/ZWL/system/native"
	"github.com/Sobeston/ZWL/system/native/sim"
)

func open() (native.API, error) {
	return sim.New(), nil
}
