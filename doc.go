// Package coro provides a minimal single-threaded cooperative concurrency
// runtime: stackless-style tasks, synchronous message-passing channels, and
// a barrier-style completion group, all coordinated through one global FIFO
// ready queue.
//
// Core pieces
//   - Scheduler: a per-instance FIFO of ready task references. Nothing in
//     this package ever resumes a task directly; every wake-up goes through
//     Scheduler.Enqueue, and Scheduler.Run drains the queue until empty.
//   - Task: a cooperative activity created with Scheduler.Spawn and started
//     with Task.Start. Tasks observe Suspended, Ready, Running and Completed
//     states and report failures through Task.Failure and Task.Join.
//   - Channel[T]: a typed point-to-point queue with optional fixed capacity,
//     blocking FIFO senders and receivers, and a terminal closed state.
//   - WaitGroup: an unsigned counter with Add, Done and a multi-waiter Wait.
//
// Go has no native stackless coroutines, so every Task is backed by one
// goroutine that blocks on a dedicated channel until the Scheduler resumes
// it, and reports back the instant it suspends or completes. The Scheduler
// never sends a resume signal to the next task until the previous one has
// reported back, so at most one task body executes at any instant. The
// single-threaded ordering guarantees described in the package's design
// notes hold even though goroutines do the work under the hood.
//
// Concurrency model
//
// A Scheduler, and everything reachable only through it (Channel, WaitGroup,
// the tasks it spawned), must be driven from a single goroutine: the one
// that calls Scheduler.Run. Application code that needs to bridge an
// asynchronous event source (timers, I/O completions) into the runtime
// should do so through the coro/bridge package rather than by resuming a
// task directly.
package coro
