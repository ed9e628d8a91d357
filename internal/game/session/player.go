package session

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/palemoky/musical-chairs/internal/game/barrier"
	"github.com/palemoky/musical-chairs/internal/game/round"
)

// Player is one contestant. Its loop runs on its own goroutine.
type Player struct {
	ID int

	state   atomic.Int32
	missed  atomic.Bool // failed to claim in the last stopped phase
	claimed atomic.Int32

	seats   SeatPool
	round   *round.State
	barrier *barrier.Barrier
	log     zerolog.Logger
}

func newPlayer(id int, seats SeatPool, st *round.State, b *barrier.Barrier, log zerolog.Logger) *Player {
	return &Player{
		ID:      id,
		seats:   seats,
		round:   st,
		barrier: b,
		log:     log.With().Int("player_id", id).Logger(),
	}
}

func (p *Player) State() PlayerState {
	return PlayerState(p.state.Load())
}

// EliminatedThisRound reports whether the player missed a seat in the most
// recent stopped phase it took part in.
func (p *Player) EliminatedThisRound() bool {
	return p.missed.Load()
}

// Claims returns how many seats the player has taken over the game.
func (p *Player) Claims() int {
	return int(p.claimed.Load())
}

func (p *Player) setState(s PlayerState) {
	p.state.Store(int32(s))
}

// Play runs the player until it is eliminated or the game ends.
func (p *Player) Play() {
	seen := 0
	for {
		p.setState(PlayerWaitingForStop)
		current, ok := p.barrier.WaitUntilStopped(seen)
		if !ok {
			p.setState(PlayerGameOver)
			return
		}
		seen = current

		if !p.round.IsActive(p.ID) {
			p.setState(PlayerEliminated)
			return
		}

		p.setState(PlayerClaiming)
		p.tryClaim(current)

		p.setState(PlayerWaitingForResume)
		if !p.barrier.WaitUntilResumed(current) {
			p.setState(PlayerGameOver)
			return
		}

		if !p.round.IsActive(p.ID) {
			p.log.Debug().Msg("🪑 eliminated, leaving the game")
			p.setState(PlayerEliminated)
			return
		}
	}
}

func (p *Player) tryClaim(current int) {
	if p.seats.TryClaim(current) && p.round.RecordClaim(current, p.ID) {
		p.missed.Store(false)
		p.claimed.Add(1)
		p.log.Debug().Int("round", current).Msg("sat down")
		return
	}
	p.missed.Store(true)
	p.log.Debug().Int("round", current).Msg("no seat left")
}
