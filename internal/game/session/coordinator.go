package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/palemoky/musical-chairs/internal/apperrors"
	"github.com/palemoky/musical-chairs/internal/delay"
	"github.com/palemoky/musical-chairs/internal/game/barrier"
	"github.com/palemoky/musical-chairs/internal/game/round"
	"github.com/palemoky/musical-chairs/internal/types"
)

// Sound cues played besides the looping music track.
const (
	CueEliminated = "eliminated"
	CueWinner     = "winner"
)

// Coordinator drives rounds until one player is left.
type Coordinator struct {
	gameID      uuid.UUID
	seats       SeatPool
	round       *round.State
	barrier     *barrier.Barrier
	reporter    types.Reporter
	music       types.Music
	delayer     types.Delayer
	clock       clockwork.Clock
	settle      time.Duration
	resumePause time.Duration
	log         zerolog.Logger

	rounds int
}

// Run plays rounds until a winner is decided. On cancellation it closes the
// barrier so every player exits, and returns the context error.
func (c *Coordinator) Run(ctx context.Context) (winner int, err error) {
	defer c.barrier.Close()

	for c.round.ActiveCount() > 1 {
		if err := c.playRound(ctx); err != nil {
			c.music.Stop()
			c.log.Warn().Err(err).Int("round", c.rounds).Msg("game interrupted")
			return 0, err
		}
	}

	// Close before reporting so the game-over event never precedes the
	// players' release; the deferred Close covers the error paths.
	c.barrier.Close()

	active := c.round.Active()
	if len(active) == 0 {
		return 0, nil
	}
	winner = active[0]
	c.music.Play(CueWinner)
	c.reporter.GameOver(types.GameResult{GameID: c.gameID, WinnerID: winner, Rounds: c.rounds})
	c.log.Info().Int("winner", winner).Int("rounds", c.rounds).Msg("🏆 game over")
	return winner, nil
}

func (c *Coordinator) playRound(ctx context.Context) error {
	start := c.round.BeginRound()
	start.GameID = c.gameID
	c.rounds = start.Round
	c.reporter.RoundStarted(start)
	c.music.Start()
	c.log.Info().Int("round", start.Round).Int("players", start.Players).Int("seats", start.Seats).Msg("🎵 music is playing")

	if err := delay.Sleep(ctx, c.clock, c.delayer.Next()); err != nil {
		return err
	}

	c.music.Stop()
	c.barrier.SignalStopped(start.Round)
	c.log.Info().Int("round", start.Round).Msg("⏹️ music stopped")

	if err := delay.Sleep(ctx, c.clock, c.settle); err != nil {
		return err
	}

	result := c.settleRound()
	if result.Eliminated != 0 {
		c.round.Eliminate(result.Eliminated)
		c.music.Play(CueEliminated)
	}
	c.reporter.RoundSettled(result)

	c.barrier.SignalResumed()

	// The last round leaves one player; nothing left to arm.
	active := c.round.ActiveCount()
	if active <= 1 {
		return nil
	}
	c.seats.ReleaseAll(result.Round+1, active-1)

	return delay.Sleep(ctx, c.clock, c.resumePause)
}

// settleRound closes claims and picks who is out. Exactly one active player
// should be missing a seat; anything else is logged and recovered.
func (c *Coordinator) settleRound() types.RoundResult {
	st := c.round.Settle()

	result := types.RoundResult{
		GameID:  c.gameID,
		Round:   st.Round,
		Seats:   make([]types.SeatClaim, 0, len(st.Seated)),
		Missing: st.Missing,
	}
	for i, id := range st.Seated {
		result.Seats = append(result.Seats, types.SeatClaim{Seat: i + 1, PlayerID: id})
	}

	switch len(st.Missing) {
	case 0:
		result.Anomaly = types.AnomalyNoElimination
		c.log.Warn().
			Err(apperrors.ErrNoEliminee).
			Int("round", st.Round).
			Int("seats", st.Seats).
			Int("seated", len(st.Seated)).
			Msg("nobody eliminated, replaying round")
	case 1:
		result.Eliminated = st.Missing[0]
	default:
		result.Anomaly = types.AnomalyMultipleEliminees
		result.Eliminated = st.Missing[0]
		c.log.Warn().
			Err(apperrors.ErrMultipleEliminees).
			Int("round", st.Round).
			Ints("missing", st.Missing).
			Int("eliminated", result.Eliminated).
			Msg("several players without a seat, eliminating the lowest id")
	}

	if result.Eliminated != 0 {
		c.log.Info().Int("round", st.Round).Int("eliminated", result.Eliminated).Msg("❌ player eliminated")
	}
	return result
}
