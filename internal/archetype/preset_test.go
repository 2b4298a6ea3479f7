package archetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/verdant/internal/plant"
)

const rowanPreset = `{
  "id": "test_rowan",
  "name": "Rowan",
  "description": "Slender tree preset used by tests.",
  "spawn_weight": 2,
  "axiom": "FT",
  "rules": {
    "T": {"successors": ["F[/&T]/T", "F[/&T]"], "weights": [0.6, 0.4]}
  },
  "branches": {
    "F": {"kind": "wood", "weight": 0.3}
  },
  "leaves": {
    "+": {"kind": "foliage", "group": 1, "opts": {"size": 0.7}}
  },
  "params": {
    "iterations": 4,
    "length": 0.9,
    "length_decay": 0.9,
    "thickness": 0.2,
    "thickness_decay": 0.5,
    "taper_rate": 0.05,
    "min_twig_radius": 0.01
  },
  "defaults": {"spread": 30, "jitter": 15, "gravity": 0.05}
}`

func writePreset(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
}

func TestLoadPresetFromOverrideDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDANT_ARCHETYPE_DIR", dir)
	writePreset(t, dir, "test_rowan", rowanPreset)

	a, ok := LoadPreset("test_rowan")
	if !ok {
		t.Fatalf("expected preset to load")
	}
	if a.Name != "Rowan" || a.SpawnWeight != 2 {
		t.Fatalf("unexpected metadata: %+v", a)
	}
	if a.Config.Defaults.Spread != 30 {
		t.Fatalf("expected defaults merged, got %+v", a.Config.Defaults)
	}

	p, err := plant.Generate(a.Config, 3)
	if err != nil {
		t.Fatalf("generate from preset: %v", err)
	}
	if len(p.Branches) == 0 || len(p.Leaves) == 0 {
		t.Fatalf("expected branches and leaves from preset, got %d/%d", len(p.Branches), len(p.Leaves))
	}
	if len(p.Warnings) != 0 {
		t.Fatalf("preset produced warnings: %v", p.Warnings)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	t.Setenv("VERDANT_ARCHETYPE_DIR", t.TempDir())
	if _, ok := LoadPreset("nope"); ok {
		t.Fatalf("expected missing preset to report not found")
	}
}

func TestLoadPresetsSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDANT_ARCHETYPE_DIR", dir)
	writePreset(t, dir, "broken", "{not json")
	writePreset(t, dir, "test_rowan", rowanPreset)

	presets := LoadPresets()
	if len(presets) != 1 || presets[0].ID != "test_rowan" {
		t.Fatalf("expected only the valid preset, got %+v", presets)
	}
}

func TestAllPrefersBuiltinOnIDCollision(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDANT_ARCHETYPE_DIR", dir)
	writePreset(t, dir, "oak", `{"id": "oak", "name": "Impostor Oak", "axiom": "F"}`)

	for _, a := range All() {
		if a.ID == "oak" && a.Name == "Impostor Oak" {
			t.Fatalf("expected builtin oak to win collision")
		}
	}
}

func TestPresetIgnoresMultiCharacterSymbolKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDANT_ARCHETYPE_DIR", dir)
	writePreset(t, dir, "odd", `{
	  "id": "odd",
	  "axiom": "F",
	  "branches": {"F": {}, "FF": {"kind": "bogus"}}
	}`)

	a, ok := LoadPreset("odd")
	if !ok {
		t.Fatalf("expected preset to load")
	}
	if len(a.Config.Branches) != 1 {
		t.Fatalf("expected multi-character key dropped, got %v", a.Config.Branches)
	}
}
