package coro

import (
	"container/list"
	"fmt"
)

// WaitGroup is a cooperative barrier: a counter that blocks any number of
// waiters until it returns to zero. Unlike sync.WaitGroup, Add and Done
// are only ever called from task bodies running on the same scheduler, so
// no atomic operations or locking are needed: the baton protocol already
// serializes every access.
type WaitGroup struct {
	sched   *Scheduler
	counter int
	waiters *list.List // element Value is TaskRef
}

// NewWaitGroup constructs a WaitGroup bound to sched.
func NewWaitGroup(sched *Scheduler) *WaitGroup {
	return &WaitGroup{sched: sched, waiters: list.New()}
}

// Add adds delta to the counter. delta may be negative. A negative delta
// never drives the counter below zero: it saturates at zero instead of
// panicking, since a cooperative single-threaded caller has no concurrent
// Add racing behind it to under- or over-count against.
func (wg *WaitGroup) Add(delta int) {
	wg.counter += delta
	if wg.counter < 0 {
		wg.counter = 0
	}
	if wg.counter == 0 {
		wg.release()
	}
}

// Done is shorthand for Add(-1).
func (wg *WaitGroup) Done() { wg.Add(-1) }

// release wakes every waiter once the counter reaches zero.
func (wg *WaitGroup) release() {
	for e := wg.waiters.Front(); e != nil; e = e.Next() {
		wg.sched.Enqueue(e.Value.(TaskRef))
	}
	wg.waiters.Init()
}

// Wait returns an Awaitable that resolves once the counter is zero.
func (wg *WaitGroup) Wait() Awaitable[struct{}] { return &wgWaiter{wg: wg} }

// AwaitWait is shorthand for Await(rt, wg.Wait()).
func (wg *WaitGroup) AwaitWait(rt *Routine) { Await(rt, wg.Wait()) }

type wgWaiter struct {
	wg *WaitGroup
}

func (a *wgWaiter) Ready() bool { return a.wg.counter == 0 }

func (a *wgWaiter) Suspend(rt *Routine) {
	if rt.sched != a.wg.sched {
		panic(fmt.Errorf("%w: waitgroup", ErrSchedulerMismatch))
	}
	a.wg.waiters.PushBack(rt.Ref())
}

func (a *wgWaiter) Resume() struct{} { return struct{}{} }

// Guard scopes a single Add(1)/Done() pair to a block of code, the way a
// deferred Done typically follows an Add in a task body. Close is safe to
// call more than once; only the first call decrements the counter.
type Guard struct {
	wg     *WaitGroup
	closed bool
}

// Go adds 1 to wg and returns a Guard whose Close calls Done at most once.
// The usual shape is:
//
//	g := wg.Go()
//	defer g.Close()
func (wg *WaitGroup) Go() *Guard {
	wg.Add(1)
	return &Guard{wg: wg}
}

// Close decrements the Guard's WaitGroup by one, if it has not already.
func (g *Guard) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.wg.Done()
}
