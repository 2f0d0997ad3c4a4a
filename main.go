package main

import (
	"flag"
	"fish/experiments"
	"fish/experiments/metrics"
	"fish/game"
	"fish/meta"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	fishTiles := flag.Uint("fish-tiles", getEnvUint("FISH_TILES", meta.FISH_TILES), "Tiles between the sea and the fish")
	boatTiles := flag.Uint("boat-tiles", getEnvUint("BOAT_TILES", meta.BOAT_TILES), "Tiles between the fish and the boat")
	iterations := flag.Uint("n", getEnvUint("ITERATIONS", meta.ITERATIONS), "Number of games to simulate")
	workers := flag.Uint("workers", getEnvUint("WORKERS", meta.GO_ROUTINES), "Number of goroutines playing games")
	seed := flag.Uint64("seed", uint64(getEnvUint("SEED", 0)), "Seed for the dice (0 picks one from the clock)")
	strategy := flag.String("strategy", getEnv("STRATEGY", meta.STRATEGY), fmt.Sprintf("Fish moved when an escaped fish is rolled, one of %v", game.StrategyNames()))
	tabletop := flag.Bool("tabletop", false, "Rolling an escaped fish advances the boat instead")
	asCSV := flag.Bool("csv", false, "Print the outcome tally as CSV")
	escapes := flag.Bool("escapes", false, "Print games per number of escaped fish as CSV")
	throughput := flag.Bool("throughput", false, fmt.Sprintf("Compare games per second across %v workers, printed as CSV", experiments.ThroughputWorkers))
	level := flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	setupLogger(*level)

	rules, err := newRules(*strategy, *tabletop)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rules")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg := experiments.Config{
		Board:      game.Board{FishTiles: int(*fishTiles), BoatTiles: int(*boatTiles)},
		Iterations: int(*iterations),
		Workers:    int(*workers),
		Seed:       *seed,
		Rules:      rules,
		Metrics:    true,
	}

	if *throughput {
		if err := writeThroughput(os.Stdout, cfg); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		return
	}

	tally, metric, err := experiments.RunSimulation(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	log.Info().Msgf("simulation took %s", metric.Duration)

	switch {
	case *escapes:
		err = metrics.NewWriter(os.Stdout).WriteEscapes(metric)
	case *asCSV:
		err = writeCSV(os.Stdout, tally)
	default:
		err = writeText(os.Stdout, cfg, tally, metric)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to print results")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
	}
}

func newRules(strategy string, tabletop bool) (*game.Rules, error) {
	if tabletop {
		return game.NewTabletopRules(), nil
	}
	displace, err := game.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return game.NewRulesWithStrategy(displace), nil
}

func writeText(out io.Writer, cfg experiments.Config, tally experiments.Tally, metric metrics.SimulationMetric) error {
	lines := []string{
		fmt.Sprintf("fish_tiles: %d", cfg.Board.FishTiles),
		fmt.Sprintf("boat_tiles: %d", cfg.Board.BoatTiles),
		fmt.Sprintf("iterations: %d", cfg.Iterations),
	}
	for _, outcome := range tally.Outcomes() {
		lines = append(lines, fmt.Sprintf("%s was chosen %d times", outcome, tally[outcome]))
	}
	lines = append(lines, fmt.Sprintf("mean turns: %.2f (min %d, max %d)", metric.MeanTurns(), metric.MinTurns, metric.MaxTurns))

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	return nil
}

func writeCSV(out io.Writer, tally experiments.Tally) error {
	return metrics.NewWriter(out).WriteTally(tally)
}

func writeThroughput(out io.Writer, cfg experiments.Config) error {
	records, err := experiments.RunThroughputExperiment(cfg, experiments.ThroughputWorkers)
	if err != nil {
		return err
	}
	return metrics.NewWriter(out).WriteThroughput(records)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint) uint {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		log.Warn().Err(err).Msgf("ignoring %s=%q", key, val)
		return defaultVal
	}
	return uint(parsed)
}
