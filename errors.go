package coro

import "errors"

// Namespace prefixes every sentinel error this package returns, in the
// teacher's style of a single constant shared by all error strings.
const Namespace = "coro"

var (
	// ErrTaskPanicked wraps a captured panic from user task code. Use
	// errors.Is(err, ErrTaskPanicked) to distinguish a panic from a plain
	// returned error.
	ErrTaskPanicked = errors.New(Namespace + ": task execution panicked")

	// ErrSchedulerMismatch marks a panic raised when a Channel or
	// WaitGroup operation is attempted from a Routine belonging to a
	// different Scheduler than the one the Channel or WaitGroup was
	// created against.
	ErrSchedulerMismatch = errors.New(Namespace + ": object belongs to a different scheduler")
)
