package experiments

import (
	"fish/engine"
	"fish/experiments/metrics"
	"fish/game"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Board      game.Board
	Iterations int
	Workers    int    // Games run in parallel when above 1
	Seed       uint64 // Worker i rolls a die seeded with Seed+i
	Rules      *game.Rules
	Metrics    bool
}

func (c Config) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("invalid iterations %d", c.Iterations)
	}
	_, err := game.NewBoard(c.Board.FishTiles, c.Board.BoatTiles)
	return err
}

// RunSimulation plays cfg.Iterations independent games and counts their outcomes.
func RunSimulation(cfg Config) (Tally, metrics.SimulationMetric, error) {
	if err := cfg.validate(); err != nil {
		return nil, metrics.SimulationMetric{}, fmt.Errorf("failed to start simulation: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = game.NewStandardRules()
	}
	workers := max(cfg.Workers, 1)

	collector := metrics.NewDummyCollector()
	if cfg.Metrics {
		collector = metrics.NewCollector()
	}

	log.Info().Msgf("starting %d games on board %+v with %d workers and seed %d...", cfg.Iterations, cfg.Board, workers, cfg.Seed)

	collector.Start(workers, cfg.Seed)
	var tally Tally
	if workers == 1 {
		tally = play(cfg, game.NewDie(cfg.Seed), cfg.Iterations, collector)
	} else {
		tally = playParallel(cfg, workers, collector)
	}
	metric := collector.Complete()

	log.Info().Msgf("completed %d games", tally.Total())
	return tally, metric, nil
}

// playParallel splits the games evenly across workers and sums their tallies.
func playParallel(cfg Config, workers int, collector metrics.Collector) Tally {
	var mu sync.Mutex
	tally := Tally{}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		games := cfg.Iterations / workers
		if i < cfg.Iterations%workers {
			games++
		}
		if games == 0 {
			continue
		}

		wg.Add(1)
		go func(die game.Die, games int) {
			defer wg.Done()

			partial := play(cfg, die, games, collector)

			mu.Lock()
			defer mu.Unlock()
			tally.Merge(partial)
		}(game.NewDie(cfg.Seed+uint64(i)), games)
	}

	wg.Wait()
	return tally
}

func play(cfg Config, die game.Die, games int, collector metrics.Collector) Tally {
	tally := Tally{}
	for i := 0; i < games; i++ {
		e := engine.LocalEngine(cfg.Board, die, engine.WithRules(cfg.Rules))
		outcome, gameMetric := e.Run()
		tally.Add(outcome)
		collector.AddGame(gameMetric)
	}
	return tally
}
