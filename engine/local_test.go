package engine

import (
	"fish/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type loadedDie struct {
	faces []game.Face
	next  int
}

func (d *loadedDie) Roll() game.Face {
	face := d.faces[d.next%len(d.faces)]
	d.next++
	return face
}

var boards = []game.Board{
	{FishTiles: 0, BoatTiles: 0},
	{FishTiles: 0, BoatTiles: 5},
	{FishTiles: 5, BoatTiles: 0},
	{FishTiles: 5, BoatTiles: 5},
	{FishTiles: 3, BoatTiles: 8},
	{FishTiles: 12, BoatTiles: 2},
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without a die", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.Board{FishTiles: 5, BoatTiles: 5}, nil)
		})
	})

	t.Run("panics on a negative board", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.Board{FishTiles: -1, BoatTiles: 5}, game.NewDie(1))
		})
	})

	t.Run("starts from the initial position", func(t *testing.T) {
		board := game.Board{FishTiles: 5, BoatTiles: 5}
		e := LocalEngine(board, game.NewDie(1))
		require.Equal(t, game.NewGameState(board), e.State)
	})
}

func TestRunTerminates(t *testing.T) {
	for _, board := range boards {
		for seed := uint64(1); seed <= 200; seed++ {
			e := LocalEngine(board, game.NewDie(seed))
			outcome, metric := e.Run()

			require.True(t, e.State.IsOver())
			require.LessOrEqual(t, metric.Turns, board.MaxTurns(), "board %+v seed %d", board, seed)
			require.Contains(t, game.Outcomes, outcome)
			require.Equal(t, game.OutcomeFor(metric.Escaped), outcome)
		}
	}
}

func TestRunMonotonicity(t *testing.T) {
	for _, rules := range []*game.Rules{game.NewStandardRules(), game.NewTabletopRules(), game.NewRulesWithStrategy(game.NearestToSea)} {
		for _, board := range boards {
			for seed := uint64(1); seed <= 50; seed++ {
				previous := game.NewGameState(board)
				observe := func(face game.Face, state *game.GameState) {
					require.LessOrEqual(t, state.Boat.Position, previous.Boat.Position, "boat moved back")
					require.GreaterOrEqual(t, state.Boat.Position, 0)

					for _, c := range game.Colors {
						before, after := previous.Fish[c], state.Fish[c]
						require.LessOrEqual(t, after.Position, before.Position, "%s fish moved back", c)
						require.GreaterOrEqual(t, after.Position, 0)
						if before.Status != game.Active {
							require.Equal(t, before, after, "%s fish changed after leaving play", c)
						}
					}
					previous = state.Copy()
				}

				LocalEngine(board, game.NewDie(seed), WithRules(rules), WithObserver(observe)).Run()
			}
		}
	}
}

func TestRunScenarios(t *testing.T) {
	t.Run("smallest board with one fish escaping first", func(t *testing.T) {
		die := &loadedDie{faces: []game.Face{game.BlueFace, game.RedFace, game.GreenFace}}
		e := LocalEngine(game.Board{FishTiles: 0, BoatTiles: 0}, die)

		outcome, metric := e.Run()

		require.Contains(t, game.Outcomes, outcome)
		require.GreaterOrEqual(t, metric.Escaped, 1)
		require.Equal(t, game.Free, e.State.Fish[game.Blue].Status)
		require.Equal(t, game.FishersWin, outcome, "Boat catches the other three on its first move")
		require.Equal(t, 2, metric.Turns)
	})

	t.Run("observer sees every turn", func(t *testing.T) {
		faces := []game.Face{}
		die := &loadedDie{faces: []game.Face{game.PinkFace, game.RedFace}}
		e := LocalEngine(game.Board{FishTiles: 1, BoatTiles: 1}, die,
			WithObserver(func(face game.Face, state *game.GameState) {
				faces = append(faces, face)
			}))

		_, metric := e.Run()

		require.Len(t, faces, metric.Turns)
		require.Equal(t, game.PinkFace, faces[0])
	})

	t.Run("tabletop rules advance the boat on escaped rolls", func(t *testing.T) {
		die := &loadedDie{faces: []game.Face{game.BlueFace}}
		e := LocalEngine(game.Board{FishTiles: 0, BoatTiles: 1}, die, WithRules(game.NewTabletopRules()))

		outcome, metric := e.Run()

		// Blue escapes, then each blue roll moves the boat onto the other fish
		require.Equal(t, 1, metric.Escaped)
		require.Equal(t, 3, metric.Turns)
		require.Equal(t, game.FishersWin, outcome)
	})

	t.Run("standard rules push other fish on escaped rolls", func(t *testing.T) {
		die := &loadedDie{faces: []game.Face{game.BlueFace}}
		outcome := PlayTrial(game.Board{FishTiles: 0, BoatTiles: 1}, die, game.NewStandardRules())

		require.Equal(t, game.FishWin, outcome)
	})

	t.Run("nil rules fall back to the standard rules", func(t *testing.T) {
		die := &loadedDie{faces: []game.Face{game.BlueFace}}
		outcome := PlayTrial(game.Board{FishTiles: 0, BoatTiles: 1}, die, nil)

		require.Equal(t, game.FishWin, outcome)
	})
}
