package game

import (
	"golang.org/x/exp/rand"
)

// RandomDie rolls uniformly over the six faces. It is not safe for concurrent
// use; give each goroutine its own die.
type RandomDie struct {
	rng *rand.Rand
}

func NewDie(seed uint64) *RandomDie {
	return &RandomDie{rng: rand.New(rand.NewSource(seed))}
}

func (d *RandomDie) Roll() Face {
	return Face(d.rng.Intn(NUM_FACES))
}
