// Package bridge binds external, OS-driven event sources (timers, I/O
// completions, callbacks from another goroutine) into a coro Scheduler.
//
// A Future is the one primitive this package adds: an Awaitable that a
// task suspends on like any channel or WaitGroup, but that is resolved
// from outside the cooperative runtime entirely, from a goroutine spawned
// by time.AfterFunc, an os/exec completion, a network callback, or
// anything else that does not itself run as a coro Task.
package bridge

import (
	"sync"

	"github.com/ygrebnov/coro"
)

// Future is a one-shot, externally-resolvable Awaitable. Unlike every
// other Awaitable in this module, Resolve and Reject may be called from
// any goroutine: Future is the seam between the single-threaded
// cooperative world and ordinary concurrent Go code.
//
// Exactly one of Resolve or Reject must be called, exactly once. Calling
// either again is a no-op.
type Future[T any] struct {
	mu        sync.Mutex
	done      bool
	value     T
	err       error
	sched     *coro.Scheduler
	waiter    coro.TaskRef
	hasWaiter bool
}

// NewFuture constructs an unresolved Future. It learns which Scheduler to
// wake from the first Routine that suspends on it via Await; Resolve or
// Reject arriving before any task has awaited it simply has nothing to
// wake.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{}
}

// Resolve fulfills f with v. Safe to call from any goroutine.
func (f *Future[T]) Resolve(v T) {
	f.settle(v, nil)
}

// Reject fails f with err. Safe to call from any goroutine.
func (f *Future[T]) Reject(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.done = true
	f.value = v
	f.err = err
	hasWaiter := f.hasWaiter
	waiter := f.waiter
	sched := f.sched
	f.mu.Unlock()

	if hasWaiter {
		// settle may run on a goroutine with no relationship to sched's
		// driver thread (the whole point of Future), so the wakeup must
		// cross that boundary through EnqueueExternal's own lock rather
		// than by mutating the ready queue/registry directly.
		sched.EnqueueExternal(waiter)
	}
}

// Await suspends rt's task until f is resolved or rejected, then returns
// its value (or error).
func (f *Future[T]) Await(rt *coro.Routine) (T, error) {
	r := coro.Await(rt, f.asAwaitable())
	return r.value, r.err
}

type futureResult[T any] struct {
	value T
	err   error
}

func (f *Future[T]) asAwaitable() coro.Awaitable[futureResult[T]] {
	return (*futureAwaiter[T])(f)
}

type futureAwaiter[T any] Future[T]

func (a *futureAwaiter[T]) Ready() bool {
	f := (*Future[T])(a)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

func (a *futureAwaiter[T]) Suspend(rt *coro.Routine) {
	f := (*Future[T])(a)
	f.mu.Lock()
	// settle may race with the Ready check that preceded this call: if it
	// already ran, record no waiter and re-enqueue immediately instead of
	// registering one that will never be woken.
	if f.done {
		f.mu.Unlock()
		rt.Scheduler().Enqueue(rt.Ref())
		return
	}
	f.sched = rt.Scheduler()
	f.waiter = rt.Ref()
	f.hasWaiter = true
	f.mu.Unlock()
}

func (a *futureAwaiter[T]) Resume() futureResult[T] {
	f := (*Future[T])(a)
	f.mu.Lock()
	defer f.mu.Unlock()
	return futureResult[T]{value: f.value, err: f.err}
}
