package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/palemoky/musical-chairs/internal/game/barrier"
	"github.com/palemoky/musical-chairs/internal/game/round"
	"github.com/palemoky/musical-chairs/internal/game/seat"
)

type playerFixture struct {
	pool    *seat.Pool
	state   *round.State
	barrier *barrier.Barrier
}

func newPlayerFixture(players int) *playerFixture {
	return &playerFixture{
		pool:    seat.NewPool(players - 1),
		state:   round.NewState(players),
		barrier: barrier.New(),
	}
}

func (f *playerFixture) start(id int) (*Player, <-chan struct{}) {
	p := newPlayer(id, f.pool, f.state, f.barrier, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Play()
	}()
	return p, done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("player goroutine did not exit")
	}
}

func TestPlayer_ClaimsSeatWhenMusicStops(t *testing.T) {
	t.Parallel()

	f := newPlayerFixture(2)
	p, done := f.start(1)

	assert.Equal(t, PlayerWaitingForStop, p.State())
	f.state.BeginRound()
	f.barrier.SignalStopped(1)

	assert.Eventually(t, func() bool {
		return p.State() == PlayerWaitingForResume
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1}, f.state.Occupied())
	assert.False(t, p.EliminatedThisRound())
	assert.Equal(t, 1, p.Claims())

	f.state.Settle()
	f.barrier.SignalResumed()
	assert.Eventually(t, func() bool {
		return p.State() == PlayerWaitingForStop
	}, time.Second, 5*time.Millisecond)

	f.barrier.Close()
	waitDone(t, done)
	assert.Equal(t, PlayerGameOver, p.State())
}

func TestPlayer_NoSeatLeft(t *testing.T) {
	t.Parallel()

	f := newPlayerFixture(2)
	f.pool.Reset(1, 0)
	p, done := f.start(2)

	f.state.BeginRound()
	f.barrier.SignalStopped(1)

	assert.Eventually(t, func() bool {
		return p.State() == PlayerWaitingForResume
	}, time.Second, 5*time.Millisecond)
	assert.True(t, p.EliminatedThisRound())
	assert.Empty(t, f.state.Occupied())

	f.state.Settle()
	f.state.Eliminate(2)
	f.barrier.SignalResumed()

	waitDone(t, done)
	assert.Equal(t, PlayerEliminated, p.State())
}

func TestPlayer_ClaimsOncePerStop(t *testing.T) {
	t.Parallel()

	f := newPlayerFixture(3)
	p, done := f.start(1)

	f.state.BeginRound()
	f.barrier.SignalStopped(1)
	assert.Eventually(t, func() bool {
		return p.State() == PlayerWaitingForResume
	}, time.Second, 5*time.Millisecond)

	// A duplicate stop broadcast for the same round is ignored.
	f.barrier.SignalStopped(1)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, p.Claims())
	assert.Equal(t, 1, f.pool.Granted())

	f.barrier.Close()
	waitDone(t, done)
}

func TestPlayer_ExitsWhenAlreadyEliminated(t *testing.T) {
	t.Parallel()

	f := newPlayerFixture(3)
	f.state.Eliminate(3)
	p, done := f.start(3)

	f.state.BeginRound()
	f.barrier.SignalStopped(1)

	waitDone(t, done)
	assert.Equal(t, PlayerEliminated, p.State())
	assert.Zero(t, f.pool.Granted())
}

func TestPlayerState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "waiting_for_stop", PlayerWaitingForStop.String())
	assert.Equal(t, "claiming", PlayerClaiming.String())
	assert.Equal(t, "waiting_for_resume", PlayerWaitingForResume.String())
	assert.Equal(t, "eliminated", PlayerEliminated.String())
	assert.Equal(t, "game_over", PlayerGameOver.String())
	assert.Equal(t, "unknown", PlayerState(99).String())
	assert.True(t, PlayerGameOver.Done())
	assert.False(t, PlayerClaiming.Done())
}
