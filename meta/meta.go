// meta/meta.go
package meta

// FISH_TILES defines the default number of tiles between the sea and the fish.
const FISH_TILES = 5

// BOAT_TILES defines the default number of tiles between the fish and the boat.
const BOAT_TILES = 5

// ITERATIONS defines the default number of simulated games.
const ITERATIONS = 10000

// GO_ROUTINES defines the default number of simulation workers.
const GO_ROUTINES = 1

// STRATEGY names the default displacement strategy.
const STRATEGY = "farthest"
