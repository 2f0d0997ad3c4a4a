package game

import "fmt"

// Color identifies a fish. The value doubles as the fish's index on the board.
type Color int

const (
	Blue   Color = iota // 0
	Orange              // 1
	Pink                // 2
	Yellow              // 3
)

// Colors lists the fish in the order they are stored and updated.
var Colors = [NUM_COLORS]Color{Blue, Orange, Pink, Yellow}

var colorNames = [NUM_COLORS]string{"blue", "orange", "pink", "yellow"}

func (c Color) String() string {
	if c < 0 || int(c) >= NUM_COLORS {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Status of a piece on the river.
type Status int

const (
	Active   Status = iota // Still swimming (or sailing)
	Captured               // Caught by the boat
	Free                   // Reached the sea
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Captured:
		return "captured"
	case Free:
		return "free"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Piece is the boat or a fish. Position 0 is the sea.
type Piece struct {
	Position int
	Status   Status
}

func (p Piece) IsActive() bool {
	return p.Status == Active
}
