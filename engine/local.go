package engine

import (
	"fish/experiments/metrics"
	"fish/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State   *game.GameState
	Die     game.Die
	rules   *game.Rules
	observe Observer
}

func LocalEngine(board game.Board, die game.Die, options ...Option) *Engine {
	if die == nil {
		panic("engine needs a die")
	}
	if board.FishTiles < 0 || board.BoatTiles < 0 {
		panic(fmt.Sprintf("invalid board %+v", board))
	}

	e := &Engine{ // Default values
		State: game.NewGameState(board),
		Die:   die,
		rules: game.NewStandardRules(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run rolls the die until the game is over.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric) {
	maxTurns := e.State.Board.MaxTurns()

	for !e.State.IsOver() {
		if e.State.Turns >= maxTurns {
			// Every turn moves a piece closer to the sea, so this cannot happen
			panic(fmt.Sprintf("game still running after %d turns: %s", e.State.Turns, e.State))
		}

		face := e.Die.Roll()
		e.State.Play(face, e.rules)

		log.Trace().Msgf("turn %d rolled %s: %s", e.State.Turns, face, e.State)
		if e.observe != nil {
			e.observe(face, e.State)
		}
	}

	outcome := e.State.Outcome()
	log.Debug().Msgf("game over after %d turns with %d escaped: %s", e.State.Turns, e.State.Escaped(), outcome)

	return outcome, metrics.GameMetric{
		Turns:   e.State.Turns,
		Escaped: e.State.Escaped(),
		Outcome: outcome,
	}
}
