package thorn

import "math/rand"

// seedRange matches the sketch's randomSeed(random(10000)).
const seedRange = 10000

// NextSeed draws the seed for the next randomized generation.
func NextSeed(r *rand.Rand) int64 {
	return r.Int63n(seedRange)
}
