package metrics

import (
	"fish/game"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("aggregates games", func(t *testing.T) {
		c := NewCollector()
		c.Start(2, 42)
		c.AddGame(GameMetric{Turns: 10, Escaped: 3, Outcome: game.FishWin})
		c.AddGame(GameMetric{Turns: 4, Escaped: 0, Outcome: game.FishersWin})
		c.AddGame(GameMetric{Turns: 7, Escaped: 2, Outcome: game.Tie})

		got := c.Complete()

		require.Equal(t, 2, got.Workers)
		require.Equal(t, uint64(42), got.Seed)
		require.Equal(t, 3, got.Games)
		require.Equal(t, 21, got.TotalTurns)
		require.Equal(t, 4, got.MinTurns)
		require.Equal(t, 10, got.MaxTurns)
		require.Equal(t, 7.0, got.MeanTurns())
		require.Equal(t, [game.NUM_COLORS + 1]int{1, 0, 1, 1, 0}, got.Escaped)
		require.False(t, got.StartTime.IsZero())
	})

	t.Run("no games", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 0)

		got := c.Complete()

		require.Equal(t, 0, got.Games)
		require.Equal(t, 0, got.MinTurns)
		require.Equal(t, 0.0, got.MeanTurns())
	})

	t.Run("safe for concurrent games", func(t *testing.T) {
		c := NewCollector()
		c.Start(8, 0)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddGame(GameMetric{Turns: 5, Escaped: 4})
				}
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, 800, got.Games)
		require.Equal(t, 4000, got.TotalTurns)
		require.Equal(t, 800, got.Escaped[4])
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 1)
		c.AddGame(GameMetric{Turns: 5})

		require.Equal(t, SimulationMetric{}, c.Complete())
	})
}

func TestGamesPerSecond(t *testing.T) {
	require.Equal(t, 250.0, SimulationMetric{Games: 500, Duration: 2 * time.Second}.GamesPerSecond())
	require.Equal(t, 0.0, SimulationMetric{Games: 500}.GamesPerSecond(), "Zero duration should not divide by zero")
}
