package game

import "fmt"

// Face represents one side of the die.
type Face int

const (
	RedFace    Face = iota // 0
	GreenFace              // 1
	PinkFace               // 2
	OrangeFace             // 3
	YellowFace             // 4
	BlueFace               // 5
)

var faceNames = [NUM_FACES]string{"red", "green", "pink", "orange", "yellow", "blue"}

func (f Face) String() string {
	if f < 0 || int(f) >= NUM_FACES {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// MovesBoat reports whether the face advances the boat directly.
func (f Face) MovesBoat() bool {
	return f == RedFace || f == GreenFace
}

// Color returns the fish named by the face. Boat faces have no color.
func (f Face) Color() (Color, bool) {
	switch f {
	case RedFace, GreenFace:
		return 0, false
	case BlueFace:
		return Blue, true
	case OrangeFace:
		return Orange, true
	case PinkFace:
		return Pink, true
	case YellowFace:
		return Yellow, true
	default:
		panic(fmt.Sprintf("unknown die face %d", int(f)))
	}
}
