package coro

import (
	"container/list"
	"log/slog"
	"sync"

	"github.com/ygrebnov/coro/internal/taskref"
	"github.com/ygrebnov/coro/metrics"
)

// TaskRef is a non-owning, index-stable reference to a Task. Channels,
// WaitGroups, join-waiter lists, and external awaiters (coro/bridge) store
// TaskRef values instead of *Task so that re-enqueuing a task already
// dropped by its owner is a safe no-op rather than a dangling pointer
// dereference.
type TaskRef = taskref.Handle

// Scheduler is a single FIFO queue of ready task references. It is the
// only thing in this package that ever resumes a task; every other
// component wakes a task by calling Enqueue.
//
// A Scheduler, and every Task, Channel, and WaitGroup created against it,
// must be driven from one goroutine: the one that calls Run. It is a
// single-threaded, per-owner scheduler; nothing here spawns extra driver
// goroutines of its own.
type Scheduler struct {
	cfg    config
	logger *slog.Logger
	meter  metrics.Provider

	refs  *taskref.Registry[*Task]
	ready *list.List // element Value is TaskRef

	extMu      sync.Mutex
	extPending []TaskRef

	nextSeq uint64

	dispatched metrics.Counter
	queueDepth metrics.UpDownCounter
	failures   metrics.Counter
}

// New constructs a Scheduler. Unless overridden by Option, it logs nothing
// above debug level and records metrics into a no-op Provider.
func New(opts ...Option) *Scheduler {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("nil coro option")
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		panic(err)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	meter := cfg.meter
	if meter == nil {
		meter = metrics.NewNoopProvider()
	}

	s := &Scheduler{
		cfg:    cfg,
		logger: logger,
		meter:  meter,
		refs:   taskref.New[*Task](),
		ready:  list.New(),
	}
	s.dispatched = meter.Counter(metricDispatched)
	s.queueDepth = meter.UpDownCounter(metricQueueDepth)
	s.failures = meter.Counter(metricTaskFailure)
	return s
}

// Enqueue appends ref to the ready queue if it still resolves to a live,
// non-completed task; otherwise it is a silent no-op. Enqueue never
// resumes a task itself.
func (s *Scheduler) Enqueue(ref TaskRef) {
	t, ok := s.refs.Get(ref)
	if !ok || t.isDone() {
		return
	}
	t.state = stateReady
	s.ready.PushBack(ref)
	s.queueDepth.Add(1)
}

// EnqueueExternal records ref as ready from any goroutine, including ones
// outside the scheduler's single driver thread (coro/bridge's Future is
// the one caller today). Unlike Enqueue, it never touches the ready
// queue or task registry itself, so it needs no alignment with the
// baton protocol: it only appends to a mutex-guarded inbox. Run drains
// that inbox and performs the real Enqueue on the driver thread, the
// same way Ready()/Suspend() already cross this boundary through a lock
// rather than by mutating scheduler state directly.
func (s *Scheduler) EnqueueExternal(ref TaskRef) {
	s.extMu.Lock()
	s.extPending = append(s.extPending, ref)
	s.extMu.Unlock()
}

// drainExternal moves every pending external wake into the ready queue.
// It must only be called from the driver thread.
func (s *Scheduler) drainExternal() {
	s.extMu.Lock()
	pending := s.extPending
	s.extPending = nil
	s.extMu.Unlock()

	for _, ref := range pending {
		s.Enqueue(ref)
	}
}

// Run drains the ready queue: while it is non-empty, pop the head and, if
// it still references a live task, resume it exactly once. A resume may
// synchronously enqueue further tasks; those are drained within the same
// Run call. Run also picks up any wakes recorded by EnqueueExternal,
// both before the loop starts and after every dispatch, so a Future
// resolved from another goroutine while Run is in progress is not
// missed until the next call. Run returns once both the ready queue and
// the external inbox are empty.
func (s *Scheduler) Run() {
	s.drainExternal()
	for e := s.ready.Front(); e != nil; e = s.ready.Front() {
		s.ready.Remove(e)
		s.queueDepth.Add(-1)
		ref := e.Value.(TaskRef)

		t, ok := s.refs.Get(ref)
		if !ok || t.isDone() {
			continue
		}
		s.dispatch(t)
		s.drainExternal()
	}
}

// Clear discards every queued reference without resuming any of them. It
// also decrements queueDepth by the number of entries discarded, so the
// metric reflects the drop instead of drifting upward forever.
func (s *Scheduler) Clear() {
	s.queueDepth.Add(-int64(s.ready.Len()))
	s.ready.Init()
}

// dispatch resumes t exactly once and blocks until t reports back that it
// has suspended again or completed. This is the baton handoff: while
// dispatch is blocked on <-t.turnDone, only t's backing goroutine touches
// scheduler-owned state, and once dispatch returns, only this goroutine
// does, until the next dispatch. Because of that strict alternation, no
// locking is required for scheduler, task, channel, or WaitGroup state;
// the only lock in this package is extMu, guarding EnqueueExternal's inbox.
func (s *Scheduler) dispatch(t *Task) {
	t.state = stateRunning
	s.logger.Debug("coro: dispatch", "task_seq", t.seq)
	t.resumeCh <- struct{}{}
	<-t.turnDone
	s.dispatched.Add(1)
	if t.isDone() {
		if t.failure != nil {
			s.failures.Add(1)
		}
		s.refs.Remove(t.ref)
	}
}
