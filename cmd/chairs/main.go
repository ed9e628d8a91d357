package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/palemoky/musical-chairs/internal/config"
	"github.com/palemoky/musical-chairs/internal/delay"
	"github.com/palemoky/musical-chairs/internal/game/session"
	"github.com/palemoky/musical-chairs/internal/logger"
	"github.com/palemoky/musical-chairs/internal/sound"
	"github.com/palemoky/musical-chairs/internal/types"
	"github.com/palemoky/musical-chairs/internal/ui/view"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	players := flag.Int("players", 0, "number of players (overrides the config file)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "using default config: %v\n", err)
		cfg = config.Default()
	}
	if *players != 0 {
		cfg.Game.Players = *players
	}

	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("game aborted")
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	if err := cfg.Validate(); err != nil {
		return err
	}

	delayer, err := delay.NewRandom(cfg.Game.MusicMinDuration(), cfg.Game.MusicMaxDuration())
	if err != nil {
		return err
	}

	var music types.Music
	if cfg.Sound.Enabled {
		mp := sound.NewMusicPlayer(cfg.Sound.Dir, cfg.Sound.Track, session.CueEliminated, session.CueWinner)
		if err := mp.Init(); err != nil {
			log.Warn().Err(err).Msg("sound disabled")
		} else {
			defer mp.Close()
			music = mp
		}
	}

	g, err := session.NewGame(session.Options{
		Players:     cfg.Game.Players,
		Settle:      cfg.Game.SettleDuration(),
		ResumePause: cfg.Game.ResumePauseDuration(),
		Delayer:     delayer,
		Reporter:    view.NewConsoleReporter(os.Stdout),
		Music:       music,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println(view.RenderWelcome(cfg.Game.Players))

	if _, err := g.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("interrupted, bye")
			return nil
		}
		return err
	}
	return nil
}
