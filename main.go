package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"territory/config"
	"territory/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gridSize := flag.Int("size", cfg.GridSize, "Grid width and height")
	interval := flag.Float64("interval", cfg.MoveInterval, "Seconds between move attempts")
	seed := flag.Uint64("seed", cfg.Seed, "Seed of the first game (0 for a time based seed)")
	policy := flag.String("policy", cfg.MovePolicy, "Move policy: fallback or require_both")
	games := flag.Int("games", cfg.Experiment.Games, "Number of games to play")
	maxTicks := flag.Int("max-ticks", cfg.Experiment.MaxTicks, "Move attempts before a game is abandoned")
	output := flag.String("out", cfg.Experiment.OutputDir, "Directory for experiment records")
	level := flag.String("log-level", cfg.LogLevel, "Log level")
	save := flag.Bool("save-config", false, "Save the resulting config to the user config directory")
	flag.Parse()

	cfg.GridSize = *gridSize
	cfg.MoveInterval = *interval
	cfg.Seed = *seed
	cfg.MovePolicy = *policy
	cfg.Experiment.Games = *games
	cfg.Experiment.MaxTicks = *maxTicks
	cfg.Experiment.OutputDir = *output
	cfg.LogLevel = *level
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
	}

	report, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, record := range report.Games {
		fmt.Printf("Game %d (seed %d): %s\n", record.ID, record.Seed, record.Result)
	}
}
