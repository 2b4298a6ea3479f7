package plant

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GoldenAngle is the default yaw step in degrees for the `/` rotate symbol,
// approximating natural phyllotactic spiral distribution.
const GoldenAngle = 137.5

// DefaultFinalRule replaces any symbol that still has a rewrite rule on the
// last grammar iteration, guaranteeing a terminal string.
const DefaultFinalRule = "+"

// SymbolFunc is a custom turtle callback bound to a single symbol. It takes
// precedence over branch and leaf symbol lookup, letting a config emit fully
// custom motifs (petal rings, whorls) from one symbol.
type SymbolFunc func(t *Turtle)

// Rule rewrites one symbol per grammar iteration. Exactly one form should be
// populated: a fixed Successor, weighted Successors, or Fn for rules that
// depend on the iteration index or an inline {N} counter.
type Rule struct {
	Successor  string
	Successors []string
	Weights    []float64
	Fn         func(iteration, count int) Outcome
}

// Outcome is the result of evaluating a rule function.
type Outcome struct {
	Successor  string
	Successors []string
	Weights    []float64
}

// Growth holds the numeric parameters shared by every branch of a plant.
type Growth struct {
	Iterations     int     `json:"iterations"`
	Length         float32 `json:"length"`
	LengthDecay    float32 `json:"length_decay"`
	Thickness      float32 `json:"thickness"`
	ThicknessDecay float32 `json:"thickness_decay"`
	TaperRate      float32 `json:"taper_rate,omitempty"`
	MinTwigRadius  float32 `json:"min_twig_radius,omitempty"`
}

// PartOpts carries visual parameters that the external geometry layer
// interprets per part kind. The core only passes them through.
type PartOpts struct {
	Size        float32 `json:"size,omitempty"`
	Width       float32 `json:"width,omitempty"`
	Bend        float32 `json:"bend,omitempty"`
	HueJitter   float32 `json:"hue_jitter,omitempty"`
	LightJitter float32 `json:"light_jitter,omitempty"`
}

// BranchParams is the fully resolved shape/force state a branch grows under.
type BranchParams struct {
	Scale        float32
	Spread       float32
	Jitter       float32
	Angle        float32
	Gravity      float32
	Wind         float32
	WindDir      rl.Vector3
	Heliotropism float32
	HorizonBias  float32
	AntiShadow   float32
	Weight       float32
	Kind         string
	Group        int
	Opts         *PartOpts
}

// BranchOverride is a partial BranchParams. Nil fields keep the current
// active value, so a symbol can adjust one force without restating the rest.
type BranchOverride struct {
	Scale        *float32
	Spread       *float32
	Jitter       *float32
	Angle        *float32
	Gravity      *float32
	Wind         *float32
	WindDir      *rl.Vector3
	Heliotropism *float32
	HorizonBias  *float32
	AntiShadow   *float32
	Weight       *float32
	Kind         *string
	Group        *int
	Opts         *PartOpts
}

func (p BranchParams) Apply(o BranchOverride) BranchParams {
	if o.Scale != nil {
		p.Scale = *o.Scale
	}
	if o.Spread != nil {
		p.Spread = *o.Spread
	}
	if o.Jitter != nil {
		p.Jitter = *o.Jitter
	}
	if o.Angle != nil {
		p.Angle = *o.Angle
	}
	if o.Gravity != nil {
		p.Gravity = *o.Gravity
	}
	if o.Wind != nil {
		p.Wind = *o.Wind
	}
	if o.WindDir != nil {
		p.WindDir = *o.WindDir
	}
	if o.Heliotropism != nil {
		p.Heliotropism = *o.Heliotropism
	}
	if o.HorizonBias != nil {
		p.HorizonBias = *o.HorizonBias
	}
	if o.AntiShadow != nil {
		p.AntiShadow = *o.AntiShadow
	}
	if o.Weight != nil {
		p.Weight = *o.Weight
	}
	if o.Kind != nil {
		p.Kind = *o.Kind
	}
	if o.Group != nil {
		p.Group = *o.Group
	}
	if o.Opts != nil {
		p.Opts = o.Opts
	}
	return p
}

// LeafParams configures one leaf symbol. Weight defaults to 1 when zero.
type LeafParams struct {
	Weight float32
	Kind   string
	Group  int
	Opts   *PartOpts
}

// Config is the immutable input of one generation run.
type Config struct {
	Axiom     string
	Rules     map[rune]Rule
	FinalRule string
	Symbols   map[rune]SymbolFunc
	Branches  map[rune]BranchOverride
	Leaves    map[rune]LeafParams
	Params    Growth
	Defaults  BranchParams
}

// Validate checks the structural preconditions that are documented rather
// than guarded at runtime: iteration count, weighted-successor shapes.
// Unknown symbols and degenerate numbers are tolerated by design and are
// not validation errors.
func (c Config) Validate() error {
	if c.Params.Iterations < 0 {
		return fmt.Errorf("iterations must be >= 0, got %d", c.Params.Iterations)
	}
	for sym, rule := range c.Rules {
		if rule.Fn != nil {
			continue
		}
		if len(rule.Successors) == 0 {
			continue
		}
		if len(rule.Weights) != len(rule.Successors) {
			return fmt.Errorf("rule %q: %d successors but %d weights", sym, len(rule.Successors), len(rule.Weights))
		}
		total := 0.0
		for _, w := range rule.Weights {
			if w < 0 {
				return fmt.Errorf("rule %q: negative weight %v", sym, w)
			}
			total += w
		}
		if total <= 0 {
			return fmt.Errorf("rule %q: weights must sum to a positive number", sym)
		}
	}
	return nil
}

// normalized repairs zero-valued numeric fields to usable defaults instead of
// failing, so loose designer configs degrade gracefully.
func (c Config) normalized() Config {
	if c.FinalRule == "" {
		c.FinalRule = DefaultFinalRule
	}
	if c.Params.Length == 0 {
		c.Params.Length = 1
	}
	if c.Params.LengthDecay == 0 {
		c.Params.LengthDecay = 1
	}
	if c.Params.Thickness == 0 {
		c.Params.Thickness = 1
	}
	if c.Defaults.Scale == 0 {
		c.Defaults.Scale = 1
	}
	if c.Defaults.Angle == 0 {
		c.Defaults.Angle = GoldenAngle
	}
	return c
}
