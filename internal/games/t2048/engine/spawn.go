package engine

// RandSource is the random source used for tile spawning.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// ClassicFourProbability is the chance of spawning a 4 in the reference rules:
// an even choice between 2 and 4.
const ClassicFourProbability = 0.5

// SpawnPolicy controls which value a new tile gets.
type SpawnPolicy struct {
	// FourProbability is the chance (0.0-1.0) that a spawned tile is 4 rather than 2.
	FourProbability float64
}

// ClassicSpawn returns the reference 50/50 spawn policy.
func ClassicSpawn() SpawnPolicy {
	return SpawnPolicy{FourProbability: ClassicFourProbability}
}

// value draws a tile value from rng.
func (p SpawnPolicy) value(rng RandSource) int {
	if rng.Float64() < p.FourProbability {
		return 4
	}
	return 2
}
