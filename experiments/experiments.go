package experiments

import (
	"fmt"
	"time"

	"territory/config"
	"territory/engine"
	"territory/experiments/metrics"
	"territory/meta"

	"github.com/rs/zerolog/log"
)

// Report summarises a finished experiment.
type Report struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays the configured number of headless games, one seed per game
// starting at cfg.Seed, and stores their records under cfg.Experiment.OutputDir.
func Run(cfg *config.Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	maxTicks := cfg.Experiment.MaxTicks
	if maxTicks == 0 {
		maxTicks = meta.MAX_TICKS
	}

	report := Report{
		Games: []metrics.GameRecord{},
		Moves: []metrics.MoveRecord{},
	}

	log.Info().Msgf("starting experiment with %d games on a %dx%d grid...", cfg.Experiment.Games, cfg.GridSize, cfg.GridSize)

	for i := 0; i < cfg.Experiment.Games; i++ {
		gameSeed := seed + uint64(i)
		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, cfg.Experiment.Games, gameSeed)

		gameMetric, moveMetrics, err := runGame(cfg, gameSeed, maxTicks)
		if err != nil {
			return report, fmt.Errorf("game %d: %w", i+1, err)
		}
		id := i + 1
		report.Games = append(report.Games, metrics.GameRecord{
			ID:         id,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			report.Moves = append(report.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d after %d moves: %s", id, gameMetric.Attempts, gameMetric.Result)
	}

	log.Info().Msg("completed experiment")

	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir)
	if err != nil {
		return report, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	report.Dir = writer.Dir()

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return report, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.Moves)
	if err != nil {
		return report, err
	}
	log.Info().Msgf("stored move records in %s", report.Dir)

	return report, nil
}

// runGame drives one session with fixed interval ticks until it ends or
// maxTicks move attempts have run.
func runGame(cfg *config.Config, seed uint64, maxTicks int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	collector := metrics.NewCollector()
	policy := cfg.Policy()
	interval := cfg.Interval()

	s, err := engine.StartSession(cfg.GridSize, interval,
		engine.WithSeed(seed),
		engine.WithPolicy(policy),
		engine.WithMetrics(collector),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	for !s.Ended() && s.Ticks() < maxTicks {
		s.Tick(interval)
	}
	if !s.Ended() {
		p1, p2 := s.Scores()
		log.Warn().Msgf("game stopped after %d moves without a winner (%d : %d)", s.Ticks(), p1, p2)
	}

	gameMetric, moveMetrics := collector.Complete(s.Result())
	gameMetric.Seed = seed
	gameMetric.Policy = policy.String()
	return gameMetric, moveMetrics, nil
}
