package experiments

import (
	"fish/experiments/metrics"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ThroughputWorkers are the worker counts compared by default.
var ThroughputWorkers = []int{1, 2, 4, 8, 16}

// RunThroughputExperiment plays the same simulation once per worker count and
// records how many games per second each setting reached.
func RunThroughputExperiment(cfg Config, workers []int) ([]metrics.ThroughputRecord, error) {
	if len(workers) == 0 {
		workers = ThroughputWorkers
	}
	cfg.Metrics = true

	log.Info().Msgf("starting throughput experiment over workers %v...", workers)

	records := []metrics.ThroughputRecord{}
	for i, w := range workers {
		if w < 1 {
			return nil, fmt.Errorf("invalid worker count %d", w)
		}
		cfg.Workers = w

		log.Info().Msgf("starting run %d of %d with %d workers...", i+1, len(workers), w)

		_, metric, err := RunSimulation(cfg)
		if err != nil {
			return nil, fmt.Errorf("throughput run with %d workers: %w", w, err)
		}
		records = append(records, metrics.ThroughputRecord{
			Workers:        w,
			Games:          metric.Games,
			Duration:       metric.Duration,
			GamesPerSecond: metric.GamesPerSecond(),
		})

		log.Info().Msgf("completed run %d of %d: %.0f games/s", i+1, len(workers), metric.GamesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return records, nil
}
