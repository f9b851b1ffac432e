// Copyright (c) 2024, The ZWL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers, extending the
// standard library errors package so that it can be imported in its place.
package errors

import "errors"

// New returns an error that formats as the given text.
// It is equivalent to [errors.New] in the standard library.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is equivalent to [errors.Is] in the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is equivalent to [errors.As] in the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is equivalent to [errors.Unwrap] in the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join returns an error that wraps the given errors.
// It is equivalent to [errors.Join] in the standard library.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
