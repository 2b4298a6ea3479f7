package archetype

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/verdant/internal/plant"
)

func TestBuiltInArchetypesGenerateCleanly(t *testing.T) {
	for _, a := range BuiltIn() {
		a := a
		t.Run(a.ID, func(t *testing.T) {
			p, err := plant.Generate(a.Config, 42)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(p.Branches) == 0 && len(p.Leaves) == 0 {
				t.Fatalf("expected geometry from builtin archetype")
			}
			if len(p.Warnings) != 0 {
				t.Fatalf("builtin archetype produced warnings: %v", p.Warnings)
			}
		})
	}
}

func TestBuiltInIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range BuiltIn() {
		if seen[a.ID] {
			t.Fatalf("duplicate builtin archetype id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestDaisyLaysPetalRingAroundPivot(t *testing.T) {
	a, err := Find("daisy")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	p, err := plant.Generate(a.Config, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	petals := 0
	discs := 0
	for _, l := range p.Leaves {
		switch l.Kind {
		case "petal":
			petals++
		case "disc":
			discs++
		}
	}
	if petals != 9 {
		t.Fatalf("expected 9 petals, got %d", petals)
	}
	if discs != 1 {
		t.Fatalf("expected 1 center disc, got %d", discs)
	}
	// The pivot is a zero-length pseudo-branch: only the stalk segments
	// contribute geometry.
	if len(p.Branches) != 3 {
		t.Fatalf("expected 3 stalk segments, got %d", len(p.Branches))
	}
}

func TestFindExactID(t *testing.T) {
	a, err := Find("oak")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if a.ID != "oak" {
		t.Fatalf("expected oak, got %q", a.ID)
	}
}

func TestFindSuggestsCloseID(t *testing.T) {
	_, err := Find("wilow")
	if err == nil {
		t.Fatalf("expected error for unknown archetype")
	}
	if !strings.Contains(err.Error(), `"willow"`) {
		t.Fatalf("expected willow suggestion, got %v", err)
	}
}

func TestFindNoSuggestionForDistantID(t *testing.T) {
	_, err := Find("xyzzyqqq")
	if err == nil {
		t.Fatalf("expected error for unknown archetype")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected no suggestion for distant id, got %v", err)
	}
}

func TestRandomRespectsSpawnWeights(t *testing.T) {
	rng := plant.NewRand(9)
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[Random(rng).ID]++
	}
	if counts["daisy"] == 0 || counts["willow"] == 0 {
		t.Fatalf("expected all archetypes reachable, got %v", counts)
	}
	if counts["daisy"] <= counts["willow"] {
		t.Fatalf("expected spawn weights to bias selection, got %v", counts)
	}
}
