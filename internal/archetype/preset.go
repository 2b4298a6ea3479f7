package archetype

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/verdant/internal/plant"
)

// Preset is the data-only JSON form of an archetype. It covers everything
// plant.Config can express except function rules and custom symbols, which
// only builtin archetypes carry.
type Preset struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	SpawnWeight float64                 `json:"spawn_weight,omitempty"`
	Axiom       string                  `json:"axiom"`
	FinalRule   string                  `json:"final_rule,omitempty"`
	Rules       map[string]presetRule   `json:"rules,omitempty"`
	Branches    map[string]presetBranch `json:"branches,omitempty"`
	Leaves      map[string]presetLeaf   `json:"leaves,omitempty"`
	Params      plant.Growth            `json:"params"`
	Defaults    presetBranch            `json:"defaults,omitempty"`
}

type presetRule struct {
	Successor  string    `json:"successor,omitempty"`
	Successors []string  `json:"successors,omitempty"`
	Weights    []float64 `json:"weights,omitempty"`
}

type presetBranch struct {
	Scale        *float32        `json:"scale,omitempty"`
	Spread       *float32        `json:"spread,omitempty"`
	Jitter       *float32        `json:"jitter,omitempty"`
	Angle        *float32        `json:"angle,omitempty"`
	Gravity      *float32        `json:"gravity,omitempty"`
	Wind         *float32        `json:"wind,omitempty"`
	WindDir      *[3]float32     `json:"wind_dir,omitempty"`
	Heliotropism *float32        `json:"heliotropism,omitempty"`
	HorizonBias  *float32        `json:"horizon_bias,omitempty"`
	AntiShadow   *float32        `json:"anti_shadow,omitempty"`
	Weight       *float32        `json:"weight,omitempty"`
	Kind         *string         `json:"kind,omitempty"`
	Group        *int            `json:"group,omitempty"`
	Opts         *plant.PartOpts `json:"opts,omitempty"`
}

type presetLeaf struct {
	Weight float32         `json:"weight,omitempty"`
	Kind   string          `json:"kind,omitempty"`
	Group  int             `json:"group,omitempty"`
	Opts   *plant.PartOpts `json:"opts,omitempty"`
}

// LoadPreset reads one preset by ID from the archetype directory.
func LoadPreset(id string) (Archetype, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Archetype{}, false
	}
	blob, err := os.ReadFile(filepath.Join(presetDir(), id+".json"))
	if err != nil {
		return Archetype{}, false
	}
	var preset Preset
	if err := json.Unmarshal(blob, &preset); err != nil {
		return Archetype{}, false
	}
	if preset.ID == "" {
		preset.ID = id
	}
	return preset.toArchetype(), true
}

// LoadPresets reads every preset JSON in the archetype directory. A missing
// directory is not an error; unreadable files are skipped.
func LoadPresets() []Archetype {
	entries, err := os.ReadDir(presetDir())
	if err != nil {
		return nil
	}
	var out []Archetype
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		if a, ok := LoadPreset(id); ok {
			out = append(out, a)
		}
	}
	return out
}

func presetDir() string {
	override := strings.TrimSpace(os.Getenv("VERDANT_ARCHETYPE_DIR"))
	if override != "" {
		return override
	}
	return filepath.Join("assets", "archetypes")
}

func (p Preset) toArchetype() Archetype {
	cfg := plant.Config{
		Axiom:     p.Axiom,
		FinalRule: p.FinalRule,
		Params:    p.Params,
		Defaults:  plant.BranchParams{}.Apply(p.Defaults.toOverride()),
	}
	if len(p.Rules) > 0 {
		cfg.Rules = map[rune]plant.Rule{}
		for key, r := range p.Rules {
			sym, ok := symbolKey(key)
			if !ok {
				continue
			}
			cfg.Rules[sym] = plant.Rule{
				Successor:  r.Successor,
				Successors: r.Successors,
				Weights:    r.Weights,
			}
		}
	}
	if len(p.Branches) > 0 {
		cfg.Branches = map[rune]plant.BranchOverride{}
		for key, b := range p.Branches {
			sym, ok := symbolKey(key)
			if !ok {
				continue
			}
			cfg.Branches[sym] = b.toOverride()
		}
	}
	if len(p.Leaves) > 0 {
		cfg.Leaves = map[rune]plant.LeafParams{}
		for key, l := range p.Leaves {
			sym, ok := symbolKey(key)
			if !ok {
				continue
			}
			cfg.Leaves[sym] = plant.LeafParams{
				Weight: l.Weight,
				Kind:   l.Kind,
				Group:  l.Group,
				Opts:   l.Opts,
			}
		}
	}
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return Archetype{
		ID:          strings.ToLower(p.ID),
		Name:        name,
		Description: p.Description,
		SpawnWeight: p.SpawnWeight,
		Config:      cfg,
	}
}

func (b presetBranch) toOverride() plant.BranchOverride {
	o := plant.BranchOverride{
		Scale:        b.Scale,
		Spread:       b.Spread,
		Jitter:       b.Jitter,
		Angle:        b.Angle,
		Gravity:      b.Gravity,
		Wind:         b.Wind,
		Heliotropism: b.Heliotropism,
		HorizonBias:  b.HorizonBias,
		AntiShadow:   b.AntiShadow,
		Weight:       b.Weight,
		Kind:         b.Kind,
		Group:        b.Group,
		Opts:         b.Opts,
	}
	if b.WindDir != nil {
		dir := rl.NewVector3(b.WindDir[0], b.WindDir[1], b.WindDir[2])
		o.WindDir = &dir
	}
	return o
}

// symbolKey maps a preset map key to its rune symbol. Keys must be a single
// character; anything else is ignored rather than failing the whole preset.
func symbolKey(key string) (rune, bool) {
	runes := []rune(key)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
