package archetype

import (
	"github.com/appengine-ltd/verdant/internal/plant"
)

func f32(v float32) *float32 { return &v }
func str(v string) *string   { return &v }

// BuiltIn returns the shipped archetypes. JSON presets can add more but
// cannot shadow these IDs.
func BuiltIn() []Archetype {
	wood := plant.BranchOverride{Kind: str("wood"), Weight: f32(0.4)}

	foliage := plant.LeafParams{
		Kind:  "foliage",
		Group: 1,
		Opts:  &plant.PartOpts{Size: 0.9, HueJitter: 0.06, LightJitter: 0.12},
	}

	oak := Archetype{
		ID:          "oak",
		Name:        "Oak",
		Description: "Broad deciduous tree with a spreading, irregular crown.",
		SpawnWeight: 3,
		Config: plant.Config{
			Axiom: "FT",
			Rules: map[rune]plant.Rule{
				'T': {
					Successors: []string{"F[/&T][///&T]", "F[/&T][//&T][////&T]", "F[&T]/T"},
					Weights:    []float64{0.4, 0.35, 0.25},
				},
			},
			Branches: map[rune]plant.BranchOverride{'F': wood},
			Leaves:   map[rune]plant.LeafParams{'+': foliage},
			Params: plant.Growth{
				Iterations:     6,
				Length:         1.2,
				LengthDecay:    0.92,
				Thickness:      0.35,
				ThicknessDecay: 0.5,
				TaperRate:      0.04,
				MinTwigRadius:  0.02,
			},
			Defaults: plant.BranchParams{
				Spread:      32,
				Jitter:      18,
				Gravity:     0.04,
				HorizonBias: 0.15,
			},
		},
	}

	willow := Archetype{
		ID:          "willow",
		Name:        "Weeping Willow",
		Description: "Strong trunk with long drooping outer branches.",
		SpawnWeight: 1,
		Config: plant.Config{
			Axiom: "FFT",
			Rules: map[rune]plant.Rule{
				'T': {
					Successors: []string{"F[/&T][//&T]/T", "F[/&T][///&T]"},
					Weights:    []float64{0.55, 0.45},
				},
			},
			Branches: map[rune]plant.BranchOverride{'F': wood},
			Leaves: map[rune]plant.LeafParams{
				'+': {Kind: "streamer", Group: 1, Opts: &plant.PartOpts{Size: 1.4, Bend: 0.8, HueJitter: 0.04}},
			},
			Params: plant.Growth{
				Iterations:     5,
				Length:         1.1,
				LengthDecay:    0.95,
				Thickness:      0.4,
				ThicknessDecay: 0.55,
				TaperRate:      0.05,
				MinTwigRadius:  0.02,
			},
			Defaults: plant.BranchParams{
				Spread:  26,
				Jitter:  14,
				Gravity: 0.28,
			},
		},
	}

	poplar := Archetype{
		ID:          "poplar",
		Name:        "Poplar",
		Description: "Columnar tree; branches hug the trunk and chase the light.",
		SpawnWeight: 2,
		Config: plant.Config{
			Axiom: "FT",
			Rules: map[rune]plant.Rule{
				'T': {Successor: "F[/&B][//&B]/T"},
				'B': {Successors: []string{"FB", "F[&B]"}, Weights: []float64{0.7, 0.3}},
			},
			Branches: map[rune]plant.BranchOverride{'F': wood},
			Leaves:   map[rune]plant.LeafParams{'+': foliage},
			Params: plant.Growth{
				Iterations:     6,
				Length:         1.0,
				LengthDecay:    0.9,
				Thickness:      0.25,
				ThicknessDecay: 0.5,
				TaperRate:      0.05,
				MinTwigRadius:  0.015,
			},
			Defaults: plant.BranchParams{
				Spread:       22,
				Jitter:       10,
				Heliotropism: 0.3,
				HorizonBias:  -0.35,
			},
		},
	}

	bush := Archetype{
		ID:          "bush",
		Name:        "Bush",
		Description: "Low multi-stem shrub, dense with foliage.",
		SpawnWeight: 4,
		Config: plant.Config{
			Axiom: "[^B][^B][^B][^B]",
			Rules: map[rune]plant.Rule{
				'B': {
					Successors: []string{"F[/&B][//&B]", "F[/&B]+", "F+[//&B]"},
					Weights:    []float64{0.45, 0.3, 0.25},
				},
			},
			Branches: map[rune]plant.BranchOverride{'F': {Kind: str("wood"), Weight: f32(0.2)}},
			Leaves: map[rune]plant.LeafParams{
				'+': {Kind: "foliage", Group: 1, Opts: &plant.PartOpts{Size: 1.1, HueJitter: 0.08, LightJitter: 0.1}},
			},
			Params: plant.Growth{
				Iterations:     4,
				Length:         0.5,
				LengthDecay:    0.85,
				Thickness:      0.08,
				ThicknessDecay: 0.45,
				TaperRate:      0.06,
				MinTwigRadius:  0.01,
			},
			Defaults: plant.BranchParams{
				Spread:      44,
				Jitter:      24,
				HorizonBias: 0.3,
			},
		},
	}

	// The daisy is grammar-free: a literal axiom, a `.` pivot pseudo-branch
	// that only sets petal parameters, and a custom symbol that lays a ring
	// of petals around the pivot orientation.
	petal := plant.LeafParams{
		Kind:   "petal",
		Weight: 0.2,
		Group:  2,
		Opts:   &plant.PartOpts{Size: 0.5, Width: 0.3, Bend: 0.25, LightJitter: 0.05},
	}
	daisy := Archetype{
		ID:          "daisy",
		Name:        "Daisy",
		Description: "Single stalk, a petal ring, and a center disc.",
		SpawnWeight: 5,
		Config: plant.Config{
			Axiom: "SSS.PC",
			Symbols: map[rune]plant.SymbolFunc{
				'P': func(t *plant.Turtle) {
					const petals = 9
					for i := 0; i < petals; i++ {
						t.Push()
						t.Rotate(float32(i) * (360.0 / petals))
						t.Bend(t.Params().Spread)
						t.Leaf(petal)
						t.Pop()
					}
				},
			},
			Branches: map[rune]plant.BranchOverride{
				'S': {Kind: str("stalk"), Scale: f32(0.6), Weight: f32(0.05)},
				'.': {Scale: f32(0), Spread: f32(72), Jitter: f32(8)},
			},
			Leaves: map[rune]plant.LeafParams{
				'C': {Kind: "disc", Weight: 0.5, Group: 2, Opts: &plant.PartOpts{Size: 0.35, HueJitter: 0.03}},
			},
			Params: plant.Growth{
				Length:         0.4,
				LengthDecay:    1,
				Thickness:      0.02,
				ThicknessDecay: 0.4,
			},
			Defaults: plant.BranchParams{
				Spread: 8,
				Jitter: 10,
			},
		},
	}

	bracken := Archetype{
		ID:          "bracken",
		Name:        "Bracken",
		Description: "Fern built from a counted cascade of fronds.",
		SpawnWeight: 3,
		Config: plant.Config{
			Axiom:     "A{5}",
			FinalRule: "L",
			Rules: map[rune]plant.Rule{
				'A': {Fn: func(_, count int) plant.Outcome {
					if count <= 0 {
						return plant.Outcome{Successor: "L"}
					}
					return plant.Outcome{
						Successors: []string{"F[/&A{-}]A{-}", "F[/&A{-}]"},
						Weights:    []float64{0.6, 0.4},
					}
				}},
			},
			Branches: map[rune]plant.BranchOverride{'F': {Kind: str("stalk"), Weight: f32(0.1)}},
			Leaves: map[rune]plant.LeafParams{
				'L': {Kind: "frond", Group: 1, Opts: &plant.PartOpts{Size: 0.8, Width: 0.2, Bend: 0.5}},
			},
			Params: plant.Growth{
				Iterations:     7,
				Length:         0.35,
				LengthDecay:    0.9,
				Thickness:      0.03,
				ThicknessDecay: 0.4,
			},
			Defaults: plant.BranchParams{
				Spread:      38,
				Jitter:      12,
				HorizonBias: 0.2,
			},
		},
	}

	return []Archetype{oak, willow, poplar, bush, daisy, bracken}
}
