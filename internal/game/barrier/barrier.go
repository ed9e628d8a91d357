// Package barrier implements the two-phase music barrier players wait on.
package barrier

import "sync"

// Barrier broadcasts "music stopped" and "music resumed" to every waiting
// player. Each stop carries the round number so a player acts at most once
// per stopped phase, and Close releases all waiters for game over.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	stopped bool
	round   int
	closed  bool
}

func New() *Barrier {
	b := &Barrier{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// SignalStopped stops the music for round and wakes players waiting for it.
func (b *Barrier) SignalStopped(round int) {
	b.mu.Lock()
	b.stopped = true
	b.round = round
	b.mu.Unlock()
	b.cond.Broadcast()
}

// SignalResumed restarts the music and wakes players waiting for it.
func (b *Barrier) SignalResumed() {
	b.mu.Lock()
	b.stopped = false
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Close marks the game over and wakes every waiter. Safe to call repeatedly.
func (b *Barrier) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

// WaitUntilStopped blocks until the music stops for a round after the given
// one. It returns that round, or ok=false once the barrier is closed.
func (b *Barrier) WaitUntilStopped(after int) (round int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for !b.closed && !(b.stopped && b.round > after) {
		b.cond.Wait()
	}
	if b.closed {
		return 0, false
	}
	return b.round, true
}

// WaitUntilResumed blocks until the music of round has resumed (or a later
// round has begun). It returns false once the barrier is closed.
func (b *Barrier) WaitUntilResumed(round int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for !b.closed && b.stopped && b.round == round {
		b.cond.Wait()
	}
	return !b.closed
}

func (b *Barrier) Stopped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopped
}

func (b *Barrier) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
