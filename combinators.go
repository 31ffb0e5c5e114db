package coro

import "errors"

// Go spawns and immediately starts fn as a new Task on rt's scheduler. It
// is shorthand for Spawn followed by Start, grounded in the same
// spawn-then-start pattern every task body otherwise writes out by hand.
func Go(rt *Routine, fn func(rt *Routine) error) *Task {
	t := rt.sched.Spawn(fn)
	t.Start()
	return t
}

// All spawns every fn concurrently, starts them, and blocks rt's task
// until every one of them completes. The returned error is errors.Join of
// every non-nil task failure, in spawn order (nil if all succeeded).
//
// All does not stop remaining tasks early when one fails: every task runs
// to completion before All returns, mirroring RunAll's "wait for every
// started task" contract rather than a cancel-on-first-error one, since
// this package's core has no cancellation primitive of its own (see
// Non-goals).
func All(rt *Routine, fns ...func(rt *Routine) error) error {
	tasks := make([]*Task, len(fns))
	for i, fn := range fns {
		tasks[i] = Go(rt, fn)
	}

	var errs []error
	for _, t := range tasks {
		if err := t.AwaitJoin(rt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ForEach applies fn to every item concurrently, one spawned Task per
// item, and blocks rt's task until all of them complete. The returned
// error is errors.Join of every non-nil per-item failure.
func ForEach[T any](rt *Routine, items []T, fn func(rt *Routine, item T) error) error {
	if len(items) == 0 {
		return nil
	}
	fns := make([]func(rt *Routine) error, len(items))
	for i := range items {
		item := items[i]
		fns[i] = func(rt *Routine) error { return fn(rt, item) }
	}
	return All(rt, fns...)
}
