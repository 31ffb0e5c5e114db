package coro

import (
	"errors"
	"fmt"
)

// TaskMetaError exposes correlation metadata for a task failure: which
// spawned task raised it, identified by the sequence number Scheduler.Spawn
// assigned at creation time.
type TaskMetaError interface {
	error
	Unwrap() error
	TaskSeq() uint64
}

type taskTaggedError struct {
	err error
	seq uint64
}

func newTaskTaggedError(err error, seq uint64) error {
	if err == nil {
		return nil
	}
	return &taskTaggedError{err: err, seq: seq}
}

func (e *taskTaggedError) Error() string   { return e.err.Error() }
func (e *taskTaggedError) Unwrap() error   { return e.err }
func (e *taskTaggedError) TaskSeq() uint64 { return e.seq }

func (e *taskTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "task(seq=%d): %+v", e.seq, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractTaskSeq returns the sequence number of the task that raised err,
// if err (or something it wraps) carries that correlation metadata.
func ExtractTaskSeq(err error) (uint64, bool) {
	var tme TaskMetaError
	if errors.As(err, &tme) {
		return tme.TaskSeq(), true
	}
	return 0, false
}
