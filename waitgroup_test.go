package coro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitGroup_WaitResolvesImmediatelyAtZero(t *testing.T) {
	sched := New()
	wg := NewWaitGroup(sched)

	resolved := false
	sched.Spawn(func(rt *Routine) error {
		wg.AwaitWait(rt)
		resolved = true
		return nil
	}).Start()

	sched.Run()
	require.True(t, resolved)
}

func TestWaitGroup_WaiterBlocksUntilAllDone(t *testing.T) {
	sched := New()
	wg := NewWaitGroup(sched)
	wg.Add(2)

	resolved := false
	sched.Spawn(func(rt *Routine) error {
		wg.AwaitWait(rt)
		resolved = true
		return nil
	}).Start()

	worker1 := sched.Spawn(func(rt *Routine) error {
		wg.Done()
		return nil
	})
	worker1.Start()

	sched.Run()
	require.False(t, resolved, "must stay blocked until the second Done")

	worker2 := sched.Spawn(func(rt *Routine) error {
		wg.Done()
		return nil
	})
	worker2.Start()
	sched.Run()

	require.True(t, resolved)
}

func TestWaitGroup_DoneSaturatesAtZero(t *testing.T) {
	sched := New()
	wg := NewWaitGroup(sched)
	wg.Done() // no matching Add; must not go negative or panic
	wg.Add(1)
	require.Equal(t, 1, wg.counter)
}

func TestWaitGroup_GuardCloseIsIdempotent(t *testing.T) {
	sched := New()
	wg := NewWaitGroup(sched)
	g := wg.Go()
	require.Equal(t, 1, wg.counter)
	g.Close()
	g.Close()
	require.Equal(t, 0, wg.counter)
}
