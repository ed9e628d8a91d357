// Package seat provides the per-round pool of seat permits.
package seat

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// arming is one round's worth of permits. A reset swaps in a new arming
// rather than releasing permits back into the old one.
type arming struct {
	sem      *semaphore.Weighted
	round    int
	capacity int
	granted  atomic.Int64
}

// Pool is a counting permit pool that is re-armed between rounds. Each
// arming belongs to one round and only honors claims for that round.
type Pool struct {
	cur atomic.Pointer[arming]
}

// NewPool returns a pool armed with capacity permits for round 1.
func NewPool(capacity int) *Pool {
	p := &Pool{}
	p.Reset(1, capacity)
	return p
}

// TryClaim takes one permit if the pool is armed for round and any is
// left. It never blocks.
func (p *Pool) TryClaim(round int) bool {
	a := p.cur.Load()
	if a.round != round || !a.sem.TryAcquire(1) {
		return false
	}
	a.granted.Add(1)
	return true
}

// Reset arms the pool for round with capacity permits. Negative capacity
// is treated as zero.
func (p *Pool) Reset(round, capacity int) {
	capacity = max(capacity, 0)
	p.cur.Store(&arming{
		sem:      semaphore.NewWeighted(int64(capacity)),
		round:    round,
		capacity: capacity,
	})
}

// ReleaseAll re-arms the pool at the end of a round for the next round's
// player count.
func (p *Pool) ReleaseAll(round, capacity int) {
	p.Reset(round, capacity)
}

// Round returns the round the current arming belongs to.
func (p *Pool) Round() int {
	return p.cur.Load().round
}

// Capacity returns the number of permits in the current arming.
func (p *Pool) Capacity() int {
	return p.cur.Load().capacity
}

// Granted returns how many permits the current arming has handed out.
func (p *Pool) Granted() int {
	return int(p.cur.Load().granted.Load())
}
