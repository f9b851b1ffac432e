// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple log level system based on log/slog that
// gates diagnostic output on a user-selected verbosity level.
package logx

import (
	"context"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default user verbosity level is
// [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] corresponding to the given user
// flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so if both vv and q are
// specified, it still returns [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func logAt(level slog.Level, msg string, args ...any) {
	if UserLevel > level {
		return
	}
	slog.Default().Log(context.Background(), level, msg, args...)
}

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	logAt(slog.LevelDebug, msg, args...)
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	logAt(slog.LevelInfo, msg, args...)
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	logAt(slog.LevelWarn, msg, args...)
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	logAt(slog.LevelError, msg, args...)
}
