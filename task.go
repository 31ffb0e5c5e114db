package coro

import (
	"container/list"
	"fmt"
)

type taskState int32

const (
	stateSuspended taskState = iota
	stateReady
	stateRunning
	stateCompleted
)

// Task is one cooperative activity. Create one with Scheduler.Spawn, begin
// it with Task.Start, and observe its outcome with IsDone, Failure, or
// Join.
//
// A Task is created Suspended: its backing goroutine is already running
// but parked before any user code executes, so that Start (and anything
// else wired before the first resume) always happens before the task body
// does.
type Task struct {
	sched *Scheduler
	ref   TaskRef
	seq   uint64

	resumeCh chan struct{}
	turnDone chan struct{}

	state       taskState
	failure     error
	joinWaiters *list.List // element Value is TaskRef
}

// Spawn creates a new Task that will run fn when started. fn receives the
// Routine it must use for every cooperative operation (Yield, channel
// Read/Write, Join, WaitGroup.Wait, or an externally-supplied awaiter).
//
// The task is created Suspended; call Task.Start to enqueue it for its
// first resumption.
func (s *Scheduler) Spawn(fn func(rt *Routine) error) *Task {
	t := &Task{
		sched:       s,
		resumeCh:    make(chan struct{}),
		turnDone:    make(chan struct{}),
		joinWaiters: list.New(),
	}
	s.nextSeq++
	t.seq = s.nextSeq
	t.ref = s.refs.Insert(t)

	rt := &Routine{task: t, sched: s}

	go func() {
		<-t.resumeCh // initial suspension: wait for Start.

		var err error
		func() {
			defer func() {
				if p := recover(); p != nil {
					if cause, ok := p.(error); ok {
						err = fmt.Errorf("%w: %w", ErrTaskPanicked, cause)
					} else {
						err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
					}
				}
			}()
			err = fn(rt)
		}()

		t.complete(err)
		t.turnDone <- struct{}{}
	}()

	return t
}

// Start enqueues t for its first resumption, transitioning it from
// Suspended to Ready. Start must be called at most once; calling it again
// is a no-op once t has left the Suspended state.
func (t *Task) Start() {
	if t.state != stateSuspended {
		return
	}
	t.sched.Enqueue(t.ref)
}

// IsDone reports whether t has reached terminal suspension.
func (t *Task) IsDone() bool { return t.isDone() }

func (t *Task) isDone() bool { return t.state == stateCompleted }

// Failure returns the failure t's body raised, if any. It is nil both
// before completion and after a successful completion.
func (t *Task) Failure() error { return t.failure }

// Join returns an Awaitable that resolves when t completes, re-raising
// t's captured failure (if any) as its own error. Await it from rt with
// coro.Await, or call the Task.AwaitJoin convenience method below.
func (t *Task) Join() Awaitable[error] { return &joinAwaiter{t: t} }

// AwaitJoin blocks rt's task until t completes and returns t's captured
// failure, exactly like Await(rt, t.Join()).
func (t *Task) AwaitJoin(rt *Routine) error { return Await(rt, t.Join()) }

// complete transitions t to Completed, captures err as its failure, and
// drains every join-waiter onto the scheduler's ready queue in enrolment
// order. It runs on t's own backing goroutine, immediately before the
// final turnDone signal that hands the baton back to the scheduler.
func (t *Task) complete(err error) {
	if err != nil && t.sched.cfg.errorTagging {
		err = newTaskTaggedError(err, t.seq)
	}
	t.failure = err
	t.state = stateCompleted

	for e := t.joinWaiters.Front(); e != nil; e = e.Next() {
		t.sched.Enqueue(e.Value.(TaskRef))
	}
	t.joinWaiters.Init()
}

type joinAwaiter struct {
	t *Task
}

func (a *joinAwaiter) Ready() bool { return a.t.isDone() }

func (a *joinAwaiter) Suspend(rt *Routine) {
	if rt.sched != a.t.sched {
		panic(fmt.Errorf("%w: join", ErrSchedulerMismatch))
	}
	a.t.joinWaiters.PushBack(rt.Ref())
}

func (a *joinAwaiter) Resume() error { return a.t.failure }
