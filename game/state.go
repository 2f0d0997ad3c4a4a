package game

import (
	"fish/utils"
	"fmt"
)

// GameState is the river at one point of a single game. Fish are indexed by
// Color.
type GameState struct {
	Board Board
	Boat  Piece
	Fish  [NUM_COLORS]Piece
	Turns int // Turns played so far
}

// NewGameState places the boat and all fish on their starting tiles.
func NewGameState(b Board) *GameState {
	gs := &GameState{
		Board: b,
		Boat:  Piece{Position: b.BoatStart(), Status: Active},
	}
	for _, c := range Colors {
		gs.Fish[c] = Piece{Position: b.FishStart(), Status: Active}
	}
	return gs
}

// Copy returns an independent copy of the state.
func (gs *GameState) Copy() *GameState {
	copied := *gs
	return &copied
}

// Play applies one die roll: movement first, then every fish's status is
// recomputed against the boat.
func (gs *GameState) Play(face Face, rules *Rules) {
	if face.MovesBoat() {
		gs.moveBoat()
	} else {
		color, _ := face.Color()
		gs.moveFish(color, rules)
	}

	for _, c := range Colors {
		gs.updateFish(c)
	}
	gs.Turns++
}

func (gs *GameState) moveFish(color Color, rules *Rules) {
	switch gs.Fish[color].Status {
	case Active:
		gs.Fish[color].Position--
	case Captured:
		// A captured fish gives its move to the boat
		gs.moveBoat()
	case Free:
		if rules.EscapedMovesBoat {
			gs.moveBoat()
			return
		}
		if other, ok := rules.Displace(gs.Fish); ok {
			if !gs.Fish[other].IsActive() {
				panic(fmt.Sprintf("strategy selected %s fish with status %s", other, gs.Fish[other].Status))
			}
			gs.Fish[other].Position--
		}
	default:
		panic(fmt.Sprintf("unknown fish status %d", int(gs.Fish[color].Status)))
	}
}

func (gs *GameState) moveBoat() {
	gs.Boat.Position--
}

// updateFish recomputes the status of an active fish. Free and captured fish
// never change status again.
func (gs *GameState) updateFish(color Color) {
	fish := &gs.Fish[color]
	if !fish.IsActive() {
		return
	}
	if fish.Position == 0 {
		fish.Status = Free
	} else if gs.Boat.Position <= fish.Position {
		fish.Status = Captured
	}
}

// IsOver reports whether the boat reached the sea or no fish is active.
func (gs *GameState) IsOver() bool {
	if gs.Boat.Position == 0 {
		return true
	}
	return gs.ActiveFish() == 0
}

func (gs *GameState) ActiveFish() int {
	return utils.CountFunc(gs.Fish[:], Piece.IsActive)
}

// Escaped counts the fish that reached the sea.
func (gs *GameState) Escaped() int {
	return utils.CountFunc(gs.Fish[:], func(p Piece) bool { return p.Status == Free })
}

// Outcome categorizes the game by its number of escaped fish.
func (gs *GameState) Outcome() Outcome {
	return OutcomeFor(gs.Escaped())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("boat=%d blue=%d(%s) orange=%d(%s) pink=%d(%s) yellow=%d(%s)",
		gs.Boat.Position,
		gs.Fish[Blue].Position, gs.Fish[Blue].Status,
		gs.Fish[Orange].Position, gs.Fish[Orange].Status,
		gs.Fish[Pink].Position, gs.Fish[Pink].Status,
		gs.Fish[Yellow].Position, gs.Fish[Yellow].Status)
}
