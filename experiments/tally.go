package experiments

import "fish/game"

// Tally counts games per outcome. Outcomes never observed are absent.
type Tally map[game.Outcome]int

func (t Tally) Add(outcome game.Outcome) {
	t[outcome]++
}

// Merge adds the counts of other into t.
func (t Tally) Merge(other Tally) {
	for outcome, count := range other {
		t[outcome] += count
	}
}

func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Outcomes returns the observed outcomes in display order.
func (t Tally) Outcomes() []game.Outcome {
	observed := []game.Outcome{}
	for _, outcome := range game.Outcomes {
		if _, ok := t[outcome]; ok {
			observed = append(observed, outcome)
		}
	}
	return observed
}
