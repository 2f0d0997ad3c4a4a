package game

import "fmt"

// Board describes the river: the sea at 0, the fish start after FishTiles
// tiles and the boat starts BoatTiles tiles behind the fish.
type Board struct {
	FishTiles int
	BoatTiles int
}

func NewBoard(fishTiles, boatTiles int) (Board, error) {
	if fishTiles < 0 || boatTiles < 0 {
		return Board{}, fmt.Errorf("invalid board: tile counts must not be negative (fish=%d, boat=%d)", fishTiles, boatTiles)
	}
	return Board{FishTiles: fishTiles, BoatTiles: boatTiles}, nil
}

// FishStart is the shared starting position of all fish.
func (b Board) FishStart() int {
	return b.FishTiles + 1
}

// BoatStart is the starting position of the boat.
func (b Board) BoatStart() int {
	return b.FishTiles + b.BoatTiles + 2
}

// MaxTurns bounds the length of any game on this board. Every turn lowers the
// boat or an active fish by one tile, or ends the game.
func (b Board) MaxTurns() int {
	return b.BoatStart() + NUM_COLORS*b.FishStart()
}
