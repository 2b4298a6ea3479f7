// Package archetype holds named plant presets on top of the generation core:
// builtin archetypes defined in Go, JSON presets loaded from an assets
// directory, and batch pre-generation of variant pools.
package archetype

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/verdant/internal/plant"
)

// Archetype is one named, fully configured plant family. SpawnWeight drives
// weighted random selection when a host scatters mixed vegetation.
type Archetype struct {
	ID          string
	Name        string
	Description string
	SpawnWeight float64
	Config      plant.Config
}

// All returns the builtin archetypes plus any JSON presets found in the
// archetype directory. Builtins win ID collisions so a stray preset file
// cannot shadow shipped content.
func All() []Archetype {
	out := BuiltIn()
	seen := map[string]bool{}
	for _, a := range out {
		seen[a.ID] = true
	}
	for _, a := range LoadPresets() {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Find looks an archetype up by ID. An unknown ID returns an error carrying
// the closest known ID as a suggestion when one is plausibly a typo.
func Find(id string) (Archetype, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	all := All()
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	best := ""
	bestDist := 0
	for _, a := range all {
		dist := levenshtein.ComputeDistance(id, a.ID)
		if dist > levenshteinLimit(len(a.ID)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = a.ID
			bestDist = dist
		}
	}
	if best != "" {
		return Archetype{}, fmt.Errorf("unknown archetype %q (did you mean %q?)", id, best)
	}
	return Archetype{}, fmt.Errorf("unknown archetype %q", id)
}

// Random picks an archetype by spawn weight.
func Random(rng *rand.Rand) Archetype {
	all := All()
	weights := make([]float64, len(all))
	for i, a := range all {
		weights[i] = a.SpawnWeight
		if weights[i] <= 0 {
			weights[i] = 1
		}
	}
	return plant.WeightedPick(rng, all, weights)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
