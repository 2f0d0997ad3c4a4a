package game

import (
	"fish/utils"
	"fmt"
)

// FarthestFromSea moves the active fish with the highest position. Ties go to
// the first fish in color order.
func FarthestFromSea(fish [NUM_COLORS]Piece) (Color, bool) {
	return pickActive(fish, func(candidate, best Piece) bool {
		return candidate.Position > best.Position
	})
}

// NearestToSea moves the active fish with the lowest position.
func NearestToSea(fish [NUM_COLORS]Piece) (Color, bool) {
	return pickActive(fish, func(candidate, best Piece) bool {
		return candidate.Position < best.Position
	})
}

// NextActive moves the first active fish in color order.
func NextActive(fish [NUM_COLORS]Piece) (Color, bool) {
	return pickActive(fish, func(candidate, best Piece) bool {
		return false
	})
}

func pickActive(fish [NUM_COLORS]Piece, better func(candidate, best Piece) bool) (Color, bool) {
	found := false
	var best Color
	for _, c := range Colors {
		if !fish[c].IsActive() {
			continue
		}
		if !found || better(fish[c], fish[best]) {
			best = c
			found = true
		}
	}
	return best, found
}

var strategyNames = []string{"farthest", "nearest", "next"}
var strategies = []Strategy{FarthestFromSea, NearestToSea, NextActive}

// StrategyNames lists the names accepted by ParseStrategy.
func StrategyNames() []string {
	return append([]string(nil), strategyNames...)
}

// ParseStrategy looks up a displacement strategy by name.
func ParseStrategy(name string) (Strategy, error) {
	i := utils.FindIndex(strategyNames, name)
	if i < 0 {
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, strategyNames)
	}
	return strategies[i], nil
}
