package archetype

import (
	"fmt"
	"sync"

	"github.com/appengine-ltd/verdant/internal/plant"
)

// PoolOptions controls batch pre-generation of archetype variants.
type PoolOptions struct {
	Variants int
	Seed     int64
}

// Pool is a pre-generated set of variants of one archetype, ready for a host
// to pick from at placement time instead of generating on demand.
type Pool struct {
	ArchetypeID string         `json:"archetype_id"`
	Seed        int64          `json:"seed"`
	Variants    []*plant.Plant `json:"variants"`
}

// Pregenerate runs the archetype's generator once per variant, in parallel.
// Each run owns its own tree and random stream, so the fan-out needs no
// locking; variant seeds derive from the base seed and stay reproducible
// regardless of scheduling order.
func Pregenerate(a Archetype, opts PoolOptions) (*Pool, error) {
	if opts.Variants <= 0 {
		opts.Variants = 1
	}
	variants := make([]*plant.Plant, opts.Variants)
	errs := make([]error, opts.Variants)

	var wg sync.WaitGroup
	for i := 0; i < opts.Variants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			variants[i], errs[i] = plant.Generate(a.Config, plant.VariantSeed(opts.Seed, i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("archetype %s variant %d: %w", a.ID, i, err)
		}
	}
	return &Pool{ArchetypeID: a.ID, Seed: opts.Seed, Variants: variants}, nil
}
