// SPDX-License-Identifier: MIT

package globstari

import "errors"

// Sentinel errors for globstari operations.
var (
	// ErrInvalidInput indicates an empty glob, an empty needle, or a
	// relative path where an absolute one is required.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState indicates a call made outside its required lifecycle
	// state: check/contains before finalize, add after finalize, or a
	// second run of a Traverser.
	ErrInvalidState = errors.New("invalid state")
	// ErrCompile indicates a glob could not be compiled to a regular
	// expression.
	ErrCompile = errors.New("glob compile error")
)
