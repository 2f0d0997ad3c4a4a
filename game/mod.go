package game

const (
	NUM_FACES  = 6 // Sides of the die
	NUM_COLORS = 4 // One fish per color
)

// Die is the source of randomness for a game, one roll per turn.
type Die interface {
	Roll() Face
}

// Strategy picks the active fish that moves when the die names a fish that
// has already escaped. It returns false if no fish is active.
type Strategy func(fish [NUM_COLORS]Piece) (Color, bool)
