// Package session runs one game of musical chairs: a coordinator goroutine
// and one goroutine per player, synchronized through the seat pool, the
// round state and the music barrier.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/palemoky/musical-chairs/internal/apperrors"
	"github.com/palemoky/musical-chairs/internal/delay"
	"github.com/palemoky/musical-chairs/internal/game/barrier"
	"github.com/palemoky/musical-chairs/internal/game/round"
	"github.com/palemoky/musical-chairs/internal/game/seat"
	"github.com/palemoky/musical-chairs/internal/types"
)

// Options 游戏参数，零值字段使用默认实现
type Options struct {
	Players     int
	Settle      time.Duration // time players get to scramble for a seat
	ResumePause time.Duration // pause after the music resumes
	Delayer     types.Delayer // how long the music plays; defaults to no delay
	Reporter    types.Reporter
	Music       types.Music
	Clock       clockwork.Clock
	// Pool overrides the seat pool. It is armed for round 1 with
	// Players-1 permits.
	Pool SeatPool
}

// Game 一局抢椅子游戏
type Game struct {
	ID          uuid.UUID
	players     []*Player
	state       *round.State
	barrier     *barrier.Barrier
	coordinator *Coordinator
}

// NewGame wires a game for opts.Players players.
func NewGame(opts Options) (*Game, error) {
	if opts.Players < 2 {
		return nil, apperrors.ErrTooFewPlayers
	}
	if opts.Settle < 0 || opts.ResumePause < 0 {
		return nil, apperrors.ErrInvalidSettleDelay
	}
	if opts.Delayer == nil {
		opts.Delayer = delay.Fixed(0)
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	if opts.Music == nil {
		opts.Music = nopMusic{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Pool == nil {
		opts.Pool = seat.NewPool(opts.Players - 1)
	} else {
		opts.Pool.Reset(1, opts.Players-1)
	}

	id := uuid.New()
	logger := log.With().Str("game_id", id.String()).Logger()

	g := &Game{
		ID:      id,
		state:   round.NewState(opts.Players),
		barrier: barrier.New(),
	}
	g.players = make([]*Player, 0, opts.Players)
	for pid := 1; pid <= opts.Players; pid++ {
		g.players = append(g.players, newPlayer(pid, opts.Pool, g.state, g.barrier, logger))
	}
	g.coordinator = &Coordinator{
		gameID:      id,
		seats:       opts.Pool,
		round:       g.state,
		barrier:     g.barrier,
		reporter:    opts.Reporter,
		music:       opts.Music,
		delayer:     opts.Delayer,
		clock:       opts.Clock,
		settle:      opts.Settle,
		resumePause: opts.ResumePause,
		log:         logger,
	}
	return g, nil
}

// Run plays the game to the end and returns the winner. Every player
// goroutine has exited when Run returns.
func (g *Game) Run(ctx context.Context) (int, error) {
	log.Info().Str("game_id", g.ID.String()).Int("players", len(g.players)).Msg("🎮 game starting")

	var eg errgroup.Group
	for _, p := range g.players {
		eg.Go(func() error {
			p.Play()
			return nil
		})
	}

	var winner int
	eg.Go(func() error {
		var err error
		winner, err = g.coordinator.Run(ctx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return winner, nil
}

// Players returns the game's players ordered by id.
func (g *Game) Players() []*Player {
	return g.players
}

// State exposes the shared round state.
func (g *Game) State() *round.State {
	return g.state
}

// Rounds returns how many rounds the coordinator has started.
func (g *Game) Rounds() int {
	return g.state.Round()
}

type nopReporter struct{}

func (nopReporter) RoundStarted(types.RoundStart)  {}
func (nopReporter) RoundSettled(types.RoundResult) {}
func (nopReporter) GameOver(types.GameResult)      {}

type nopMusic struct{}

func (nopMusic) Start()      {}
func (nopMusic) Stop()       {}
func (nopMusic) Play(string) {}
