package metrics

import (
	"encoding/csv"
	"fish/game"
	"fmt"
	"io"
	"strconv"
)

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

// WriteTally writes one row per observed outcome, in display order.
func (w *Writer) WriteTally(counts map[game.Outcome]int) error {
	writer := csv.NewWriter(w.out)

	total := 0
	for _, count := range counts {
		total += count
	}

	// Write header
	header := []string{"outcome", "count", "share"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write tally header: %w", err)
	}

	// Write each row
	for _, outcome := range game.Outcomes {
		count, ok := counts[outcome]
		if !ok {
			continue
		}
		row := []string{
			outcome.String(),
			strconv.Itoa(count),
			strconv.FormatFloat(float64(count)/float64(total), 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write tally row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush tally: %w", err)
	}
	return nil
}

// WriteEscapes writes how many games ended with each number of escaped fish.
func (w *Writer) WriteEscapes(metric SimulationMetric) error {
	writer := csv.NewWriter(w.out)

	err := writer.Write([]string{"escaped", "games"})
	if err != nil {
		return fmt.Errorf("failed to write escapes header: %w", err)
	}

	for escaped, games := range metric.Escaped {
		err = writer.Write([]string{strconv.Itoa(escaped), strconv.Itoa(games)})
		if err != nil {
			return fmt.Errorf("failed to write escapes row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush escapes: %w", err)
	}
	return nil
}

func (w *Writer) WriteThroughput(records []ThroughputRecord) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"workers", "games", "duration", "games_per_second"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write throughput header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Games),
			record.Duration.String(),
			strconv.FormatFloat(record.GamesPerSecond, 'f', 1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write throughput row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush throughput: %w", err)
	}
	return nil
}
