package barrier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

func TestBarrier_WaitUntilStopped(t *testing.T) {
	t.Parallel()

	b := New()
	got := make(chan int, 1)
	go func() {
		round, ok := b.WaitUntilStopped(0)
		if ok {
			got <- round
		}
	}()

	select {
	case <-got:
		t.Fatal("waiter returned before the music stopped")
	case <-time.After(50 * time.Millisecond):
	}

	b.SignalStopped(1)
	select {
	case round := <-got:
		assert.Equal(t, 1, round)
	case <-time.After(waitTimeout):
		t.Fatal("waiter not released by SignalStopped")
	}
	assert.True(t, b.Stopped())
}

func TestBarrier_StoppedRoundIsNotSeenTwice(t *testing.T) {
	t.Parallel()

	b := New()
	b.SignalStopped(1)

	round, ok := b.WaitUntilStopped(0)
	require.True(t, ok)
	assert.Equal(t, 1, round)

	// Still stopped for round 1: a player that already acted must keep waiting.
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.WaitUntilStopped(1)
	}()

	select {
	case <-done:
		t.Fatal("player re-entered the same stopped phase")
	case <-time.After(50 * time.Millisecond):
	}

	b.SignalResumed()
	b.SignalStopped(2)
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("waiter not released by the next round")
	}
}

func TestBarrier_WaitUntilResumed(t *testing.T) {
	t.Parallel()

	b := New()
	b.SignalStopped(1)

	resumed := make(chan bool, 1)
	go func() {
		resumed <- b.WaitUntilResumed(1)
	}()

	select {
	case <-resumed:
		t.Fatal("waiter returned while the music was stopped")
	case <-time.After(50 * time.Millisecond):
	}

	b.SignalResumed()
	select {
	case ok := <-resumed:
		assert.True(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("waiter not released by SignalResumed")
	}

	// Already resumed: returns immediately.
	assert.True(t, b.WaitUntilResumed(1))
}

func TestBarrier_ResumedWaitSkipsToNewerRound(t *testing.T) {
	t.Parallel()

	b := New()
	b.SignalStopped(2)
	// A straggler still holding round 1 must not block on round 2's stop.
	assert.True(t, b.WaitUntilResumed(1))
}

func TestBarrier_CloseReleasesAllWaiters(t *testing.T) {
	t.Parallel()

	b := New()
	b.SignalStopped(1)

	var wg sync.WaitGroup
	results := make(chan bool, 8)
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, ok := b.WaitUntilStopped(1)
			results <- ok
		}()
		go func() {
			defer wg.Done()
			results <- b.WaitUntilResumed(1)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	b.Close()
	b.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("waiters still blocked after Close")
	}

	close(results)
	for ok := range results {
		assert.False(t, ok)
	}
	assert.True(t, b.Closed())
}

func TestBarrier_DuplicateBroadcastsAreHarmless(t *testing.T) {
	t.Parallel()

	b := New()
	b.SignalResumed()
	b.SignalResumed()
	b.SignalStopped(1)
	b.SignalStopped(1)

	round, ok := b.WaitUntilStopped(0)
	require.True(t, ok)
	assert.Equal(t, 1, round)
}
