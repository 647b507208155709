package reviewers

import (
	"math/rand/v2"
)

// RandomSampler draws members uniformly at random from the runtime's
// goroutine-safe generator. It holds no state of its own.
type RandomSampler struct{}

// NewRandomSampler returns the production sampler.
func NewRandomSampler() RandomSampler {
	return RandomSampler{}
}

// Sample implements core.Sampler.
func (RandomSampler) Sample(members []int64, count int) []int64 {
	return partialShuffle(members, count, rand.IntN)
}

// SeededSampler draws the same selection for the same input on every call.
type SeededSampler struct {
	seed uint64
}

// NewSeededSampler returns a deterministic sampler for tests and replays.
func NewSeededSampler(seed uint64) SeededSampler {
	return SeededSampler{seed: seed}
}

// Sample implements core.Sampler. Every call builds its own generator.
func (s SeededSampler) Sample(members []int64, count int) []int64 {
	r := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	return partialShuffle(members, count, r.IntN)
}

// partialShuffle runs the first count steps of a Fisher-Yates shuffle over a
// copy of members, which yields count distinct members without replacement.
func partialShuffle(members []int64, count int, intN func(int) int) []int64 {
	if count > len(members) {
		count = len(members)
	}
	if count <= 0 {
		return []int64{}
	}

	pool := make([]int64, len(members))
	copy(pool, members)
	for i := range count {
		j := i + intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
