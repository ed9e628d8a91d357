//go:build !production

package session

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/musical-chairs/internal/game/seat"
	"github.com/palemoky/musical-chairs/internal/types"
)

// RecordingReporter 记录所有事件，供测试断言
type RecordingReporter struct {
	mu      sync.Mutex
	Starts  []types.RoundStart
	Results []types.RoundResult
	Over    []types.GameResult
}

func (r *RecordingReporter) RoundStarted(ev types.RoundStart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Starts = append(r.Starts, ev)
}

func (r *RecordingReporter) RoundSettled(ev types.RoundResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Results = append(r.Results, ev)
}

func (r *RecordingReporter) GameOver(ev types.GameResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Over = append(r.Over, ev)
}

// MockMusic 音乐 mock
type MockMusic struct {
	mock.Mock
}

func (m *MockMusic) Start() {
	m.Called()
}

func (m *MockMusic) Stop() {
	m.Called()
}

func (m *MockMusic) Play(cue string) {
	m.Called(cue)
}

// LeakyPool grants Extra permits beyond the requested capacity for the
// first Leaks armings, simulating a mis-sized reset.
type LeakyPool struct {
	*seat.Pool
	Extra int
	Leaks int

	mu     sync.Mutex
	resets int
}

func NewLeakyPool(extra, leaks int) *LeakyPool {
	return &LeakyPool{Pool: seat.NewPool(0), Extra: extra, Leaks: leaks}
}

func (p *LeakyPool) Reset(round, capacity int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resets++
	if p.resets <= p.Leaks {
		capacity += p.Extra
	}
	p.Pool.Reset(round, capacity)
}

func (p *LeakyPool) ReleaseAll(round, capacity int) {
	p.Reset(round, capacity)
}

// Resets counts armings, including the initial one.
func (p *LeakyPool) Resets() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resets
}
