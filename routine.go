package coro

// Routine is the Go binding of "the currently-executing task's
// continuation." Every cooperative operation takes one explicitly, the
// same way idiomatic Go threads a context.Context through a call stack
// instead of relying on goroutine-local state, since Go has no equivalent
// of an implicit "current fiber."
//
// A Routine is only valid for use by the single goroutine currently
// holding its task's baton (see DESIGN.md); using one from any other
// goroutine is undefined, mirroring the scheduler's single-driver
// requirement.
type Routine struct {
	task  *Task
	sched *Scheduler
}

// Scheduler returns the Scheduler that owns rt's task.
func (rt *Routine) Scheduler() *Scheduler { return rt.sched }

// Ref returns a non-owning reference to rt's own task, suitable for
// storing in a wait queue or handing to an external awaiter (coro/bridge)
// that will later call Scheduler.Enqueue, or Scheduler.EnqueueExternal
// from another goroutine, on it.
func (rt *Routine) Ref() TaskRef { return rt.task.ref }

// Yield is the reschedule yield: it suspends rt's task and immediately
// re-enqueues it, giving other ready tasks a chance to run before this one
// continues.
func (rt *Routine) Yield() {
	rt.sched.Enqueue(rt.task.ref)
	rt.park()
}

// YieldBare is the bare yield: it suspends rt's task without enqueuing
// it. Some other party (a channel operation's counterpart, a
// WaitGroup.Done call, a Task completion, or an external awaiter) must
// take responsibility for calling Scheduler.Enqueue on rt.Ref() later, or
// this task never resumes.
func (rt *Routine) YieldBare() {
	rt.park()
}

// park hands the baton back to the scheduler and blocks until the
// scheduler resumes this task again.
func (rt *Routine) park() {
	rt.task.turnDone <- struct{}{}
	<-rt.task.resumeCh
}
