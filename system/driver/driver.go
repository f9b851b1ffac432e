// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the appropriate windowing backend for the current
// platform and wires it to the event bridge: win32 on Windows, X11 on
// Linux, and the in-memory simulated backend elsewhere and under tests.
package driver

import (
	"github.com/Sobeston/ZWL/system"
	"github.com/Sobeston/ZWL/system/driver/bridge"
)

// New connects to the platform windowing system and returns the
// application handle for it.
func New() (system.App, error) {
	api, err := open()
	if err != nil {
		return nil, err
	}
	return bridge.New(api, nil)
}
