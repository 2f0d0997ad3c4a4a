package game

// Rules decides what happens when the die names a fish that already escaped.
type Rules struct {
	// Displace picks a substitute fish to move.
	Displace Strategy
	// EscapedMovesBoat advances the boat instead, as in the printed tabletop
	// rules. Displace is ignored when set.
	EscapedMovesBoat bool
}

// NewStandardRules moves the fish farthest from the sea in place of an
// escaped one.
func NewStandardRules() *Rules {
	return &Rules{
		Displace: FarthestFromSea,
	}
}

func NewRulesWithStrategy(strategy Strategy) *Rules {
	if strategy == nil {
		strategy = FarthestFromSea
	}
	return &Rules{
		Displace: strategy,
	}
}

// NewTabletopRules advances the boat whenever the die names an escaped fish.
func NewTabletopRules() *Rules {
	return &Rules{
		Displace:         FarthestFromSea,
		EscapedMovesBoat: true,
	}
}
