package main

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hive/agent"
	"hive/engine"
	"hive/game"
)

type config struct {
	Games      int    `env:"GAMES" envDefault:"10"`
	Seed       uint64 `env:"SEED" envDefault:"1"`
	RoundLimit int    `env:"ROUND_LIMIT" envDefault:"30"`
	Obstructed int    `env:"OBSTRUCTED_FIELDS" envDefault:"3"`
	Strict     bool   `env:"STRICT_MOVES" envDefault:"false"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("parse env")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("parse log level")
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	wins := map[game.Player]int{}
	draws := 0
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		options := []engine.Option{
			engine.WithRoundLimit(cfg.RoundLimit),
			engine.WithObstructedFields(cfg.Obstructed),
			engine.WithSeed(seed),
		}
		if cfg.Strict {
			options = append(options, engine.WithStrictMoves())
		}
		e := engine.New(agent.NewRandom(seed), agent.NewRandom(seed+0x9e3779b9), options...)

		result := e.Run()
		if result.Winner == game.NoPlayer {
			draws++
		} else {
			wins[result.Winner]++
		}
		log.Info().Int("game", i+1).
			Stringer("winner", result.Winner).
			Str("reason", result.Reason).
			Int("turns", result.Turns).
			Msg("game finished")
	}

	log.Info().Int("games", cfg.Games).
		Int("red_wins", wins[game.Red]).
		Int("blue_wins", wins[game.Blue]).
		Int("draws", draws).
		Msg("self-play finished")
}
