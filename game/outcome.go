package game

import "fmt"

// Outcome is the category a finished game falls into.
type Outcome int

const (
	FishWin    Outcome = iota // More than two fish escaped
	Tie                       // Exactly two fish escaped
	FishersWin                // At most one fish escaped
)

// Outcomes lists every category in display order.
var Outcomes = []Outcome{FishWin, Tie, FishersWin}

func (o Outcome) String() string {
	switch o {
	case FishWin:
		return "FishWin"
	case Tie:
		return "Tie"
	case FishersWin:
		return "FishersWin"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// OutcomeFor maps the number of escaped fish to an outcome.
func OutcomeFor(escaped int) Outcome {
	if escaped > 2 {
		return FishWin
	} else if escaped == 2 {
		return Tie
	}
	return FishersWin
}
