package plant

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// NewRand returns a seeded random source matching the one Generate uses
// internally, for callers that drive weighted selection themselves.
func NewRand(seed int64) *rand.Rand {
	return seededRNG(seed)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// VariantSeed derives an independent seed for the nth variant of a batch so
// that parallel pre-generation stays reproducible from one base seed.
func VariantSeed(seed int64, n int) int64 {
	return int64(seedWord(seed, fmt.Sprintf("variant:%d", n)))
}

// WeightedIndex picks an index from weights using the supplied source: roll a
// uniform value in [0, totalWeight) and return the first index whose running
// total exceeds it. A non-positive total is a caller error; index 0 is
// returned so malformed config degrades instead of crashing.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || len(weights) == 0 {
		return 0
	}
	roll := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if acc > roll {
			return i
		}
	}
	return len(weights) - 1
}

// WeightedPick returns one of values selected by parallel weights. Values and
// weights must be the same length; extra weights are ignored.
func WeightedPick[T any](rng *rand.Rand, values []T, weights []float64) T {
	if len(weights) > len(values) {
		weights = weights[:len(values)]
	}
	return values[WeightedIndex(rng, weights)]
}
