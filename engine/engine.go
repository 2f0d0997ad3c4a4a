package engine

import "fish/game"

type Option func(e *Engine)

// Observer is called after every turn with the face rolled and the new state.
// The state must not be modified.
type Observer func(face game.Face, state *game.GameState)

// WithRules replaces the standard rules. A nil rules value is ignored.
func WithRules(rules *game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithObserver registers a callback run after every turn.
func WithObserver(observe Observer) Option {
	return func(e *Engine) {
		e.observe = observe
	}
}

// PlayTrial plays a single game on the board and returns its outcome.
func PlayTrial(board game.Board, die game.Die, rules *game.Rules) game.Outcome {
	outcome, _ := LocalEngine(board, die, WithRules(rules)).Run()
	return outcome
}
