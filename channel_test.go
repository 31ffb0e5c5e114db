package coro

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannel_BufferedProducerConsumer(t *testing.T) {
	sched := New()
	ch := NewChannel[int](sched, 2)

	var got []int
	sched.Spawn(func(rt *Routine) error {
		for i := 1; i <= 4; i++ {
			ch.AwaitWrite(rt, i)
		}
		ch.Close()
		return nil
	}).Start()

	sched.Spawn(func(rt *Routine) error {
		for {
			v, ok := ch.AwaitRead(rt)
			if !ok {
				return nil
			}
			got = append(got, v)
		}
	}).Start()

	sched.Run()
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestChannel_UnbufferedSingleConsumer(t *testing.T) {
	sched := New()
	ch := NewChannel[string](sched, 0)

	var got []string
	sched.Spawn(func(rt *Routine) error {
		ch.AwaitWrite(rt, "a")
		ch.AwaitWrite(rt, "b")
		ch.Close()
		return nil
	}).Start()
	sched.Spawn(func(rt *Routine) error {
		for {
			v, ok := ch.AwaitRead(rt)
			if !ok {
				return nil
			}
			got = append(got, v)
		}
	}).Start()

	sched.Run()
	require.Equal(t, []string{"a", "b"}, got)
}

func TestChannel_UnbufferedTwoConsumersFIFO(t *testing.T) {
	sched := New()
	ch := NewChannel[int](sched, 0)

	var order []string

	sched.Spawn(func(rt *Routine) error {
		v, ok := ch.AwaitRead(rt)
		require.True(t, ok)
		order = append(order, "c1:"+strconv.Itoa(v))
		return nil
	}).Start()

	sched.Spawn(func(rt *Routine) error {
		v, ok := ch.AwaitRead(rt)
		require.True(t, ok)
		order = append(order, "c2:"+strconv.Itoa(v))
		return nil
	}).Start()

	sched.Spawn(func(rt *Routine) error {
		ch.AwaitWrite(rt, 1)
		ch.AwaitWrite(rt, 2)
		return nil
	}).Start()

	sched.Run()
	require.Equal(t, []string{"c1:1", "c2:2"}, order)
}

func TestChannel_CloseWakesBlockedReader(t *testing.T) {
	sched := New()
	ch := NewChannel[int](sched, 1)

	readerGotOK := true
	sched.Spawn(func(rt *Routine) error {
		_, ok := ch.AwaitRead(rt)
		readerGotOK = ok
		return nil
	}).Start()

	sched.Run() // reader suspends: buffer is empty, nothing to read yet.
	ch.Close()
	sched.Run()

	require.False(t, readerGotOK)
}

func TestChannel_CloseDropsParkedSenderButKeepsBufferedValue(t *testing.T) {
	sched := New()
	ch := NewChannel[int](sched, 1)

	firstOK, secondOK := false, false
	sched.Spawn(func(rt *Routine) error {
		firstOK = ch.AwaitWrite(rt, 1) // fills the buffer, does not suspend.
		return nil
	}).Start()
	sched.Spawn(func(rt *Routine) error {
		secondOK = ch.AwaitWrite(rt, 2) // buffer full: suspends.
		return nil
	}).Start()

	sched.Run()
	require.True(t, firstOK)

	ch.Close()
	sched.Run()
	require.False(t, secondOK)

	var got []int
	sched.Spawn(func(rt *Routine) error {
		for {
			v, ok := ch.AwaitRead(rt)
			if !ok {
				return nil
			}
			got = append(got, v)
		}
	}).Start()
	sched.Run()

	require.Equal(t, []int{1}, got)
}

func TestChannel_WaitGroupFanIn(t *testing.T) {
	sched := New()
	ch := NewChannel[int](sched, 0)
	wg := NewWaitGroup(sched)

	total := 0
	collector := sched.Spawn(func(rt *Routine) error {
		for {
			v, ok := ch.AwaitRead(rt)
			if !ok {
				return nil
			}
			total += v
		}
	})
	collector.Start()

	for i := 1; i <= 3; i++ {
		i := i
		g := wg.Go()
		sched.Spawn(func(rt *Routine) error {
			defer g.Close()
			ch.AwaitWrite(rt, i)
			return nil
		}).Start()
	}

	closer := sched.Spawn(func(rt *Routine) error {
		wg.AwaitWait(rt)
		ch.Close()
		return nil
	})
	closer.Start()

	sched.Run()
	require.Equal(t, 6, total)
}

