package plant

import (
	"testing"
)

func TestGenerateSingleBranchStretchedByVigor(t *testing.T) {
	cfg := Config{
		Axiom:    "F",
		Branches: map[rune]BranchOverride{'F': {Scale: f32(1)}},
		Params:   Growth{Length: 1, LengthDecay: 1},
	}
	p, err := Generate(cfg, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(p.Branches) != 1 {
		t.Fatalf("expected exactly 1 branch, got %d", len(p.Branches))
	}
	// A single child carries 100% of the root's load, so the unit segment
	// stretches to 1.2.
	if !almostEqual(p.Branches[0].End.Y, 1.2, 1e-5) {
		t.Fatalf("expected end y 1.2, got %v", p.Branches[0].End.Y)
	}
}

func TestGenerateSingleBranchTaperedRadii(t *testing.T) {
	cfg := Config{
		Axiom:    "F",
		Branches: map[rune]BranchOverride{'F': {Scale: f32(1)}},
		Params: Growth{
			Length:         1,
			LengthDecay:    1,
			Thickness:      1.0,
			ThicknessDecay: 0.5,
			TaperRate:      0.1,
			MinTwigRadius:  0.05,
		},
	}
	p, err := Generate(cfg, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b := p.Branches[0]
	if !almostEqual(b.RadiusStart, 1.0, 1e-4) {
		t.Fatalf("expected radius start 1.0, got %v", b.RadiusStart)
	}
	if !almostEqual(b.RadiusEnd, 0.88, 1e-4) {
		t.Fatalf("expected radius end 0.88, got %v", b.RadiusEnd)
	}
}

func TestGenerateLongBranchFloorsRadiusEnd(t *testing.T) {
	cfg := Config{
		Axiom:    "F",
		Branches: map[rune]BranchOverride{'F': {Scale: f32(10)}},
		Params: Growth{
			Length:         1,
			LengthDecay:    1,
			Thickness:      1.0,
			ThicknessDecay: 0.5,
			TaperRate:      0.5,
			MinTwigRadius:  0.2,
		},
	}
	p, err := Generate(cfg, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if p.Branches[0].RadiusEnd != 0.2 {
		t.Fatalf("expected radius end floored at 0.2, got %v", p.Branches[0].RadiusEnd)
	}
}

func TestGenerateWeightedLeafRuleProducesOneLeaf(t *testing.T) {
	cfg := Config{
		Axiom: "A",
		Rules: map[rune]Rule{
			'A': {Successors: []string{"B", "C"}, Weights: []float64{0.5, 0.5}},
		},
		Leaves: map[rune]LeafParams{
			'B': {Kind: "broad"},
			'C': {Kind: "narrow"},
		},
		Params: Growth{Iterations: 2},
	}
	for seed := int64(0); seed < 10; seed++ {
		p, err := Generate(cfg, seed)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(p.Leaves) != 1 {
			t.Fatalf("seed %d: expected exactly 1 leaf, got %d", seed, len(p.Leaves))
		}
		if len(p.Branches) != 0 {
			t.Fatalf("seed %d: expected no branches, got %d", seed, len(p.Branches))
		}
	}
}

func TestGenerateNoRulesInterpretsAxiomLiterally(t *testing.T) {
	cfg := Config{
		Axiom:    "F[F]F",
		Branches: map[rune]BranchOverride{'F': {}},
	}
	p, err := Generate(cfg, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(p.Branches) != 3 {
		t.Fatalf("expected 3 branches from literal axiom, got %d", len(p.Branches))
	}
}

func TestGenerateSameSeedSamePlant(t *testing.T) {
	cfg := Config{
		Axiom: "T",
		Rules: map[rune]Rule{
			'T': {Successors: []string{"F[&T]/T", "F[&T]", "FT"}, Weights: []float64{0.5, 0.3, 0.2}},
		},
		Branches: map[rune]BranchOverride{'F': {}},
		Defaults: BranchParams{Spread: 35, Jitter: 20},
		Params:   Growth{Iterations: 5, LengthDecay: 0.9},
	}
	a, err := Generate(cfg, 77)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(cfg, 77)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(a.Branches) != len(b.Branches) || len(a.Leaves) != len(b.Leaves) {
		t.Fatalf("expected identical structure for same seed: %d/%d branches, %d/%d leaves",
			len(a.Branches), len(b.Branches), len(a.Leaves), len(b.Leaves))
	}
	for i := range a.Branches {
		if !vecAlmostEqual(a.Branches[i].End, b.Branches[i].End, 1e-6) {
			t.Fatalf("branch %d diverged between identical seeds", i)
		}
	}
	c, err := Generate(cfg, 78)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(a.Branches) == len(c.Branches) {
		identical := true
		for i := range a.Branches {
			if !vecAlmostEqual(a.Branches[i].End, c.Branches[i].End, 1e-6) {
				identical = false
				break
			}
		}
		if identical {
			t.Fatalf("expected different seeds to diverge")
		}
	}
}

func TestGenerateCollectsUnknownSymbolWarnings(t *testing.T) {
	cfg := Config{
		Axiom:    "FQ",
		Branches: map[rune]BranchOverride{'F': {}},
	}
	p, err := Generate(cfg, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(p.Warnings) != 1 {
		t.Fatalf("expected one warning for unknown symbol, got %v", p.Warnings)
	}
}

func TestGenerateValidateRejectsBadWeights(t *testing.T) {
	cfg := Config{
		Axiom: "A",
		Rules: map[rune]Rule{
			'A': {Successors: []string{"B", "C"}, Weights: []float64{0, 0}},
		},
		Params: Growth{Iterations: 1},
	}
	if _, err := Generate(cfg, 1); err == nil {
		t.Fatalf("expected validation error for non-positive weight total")
	}
}

func TestGenerateFreshOutputPerCall(t *testing.T) {
	cfg := Config{
		Axiom:    "F",
		Branches: map[rune]BranchOverride{'F': {}},
	}
	a, _ := Generate(cfg, 1)
	b, _ := Generate(cfg, 1)
	if len(a.Branches) == 0 || len(b.Branches) == 0 {
		t.Fatalf("expected branches from both runs")
	}
	if a.Branches[0] == b.Branches[0] {
		t.Fatalf("expected runs to own independent output records")
	}
}
