package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/verdant/internal/archetype"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateArchetypesDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateArchetypesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Plant Archetypes\n\n")
	b.WriteString("Builtin archetypes shipped with the generator. JSON presets in `assets/archetypes/` extend this list.\n\n")

	for _, a := range archetype.BuiltIn() {
		cfg := a.Config
		b.WriteString(fmt.Sprintf("## %s (`%s`)\n\n", a.Name, a.ID))
		if a.Description != "" {
			b.WriteString(a.Description + "\n\n")
		}
		b.WriteString(fmt.Sprintf("- Axiom: `%s`\n", cfg.Axiom))
		b.WriteString(fmt.Sprintf("- Iterations: %d\n", cfg.Params.Iterations))
		b.WriteString(fmt.Sprintf("- Spawn weight: %v\n", a.SpawnWeight))
		if len(cfg.Rules) > 0 {
			b.WriteString(fmt.Sprintf("- Rewrite rules: %s\n", symbolList(runeKeys(cfg.Rules))))
		}
		if len(cfg.Symbols) > 0 {
			b.WriteString(fmt.Sprintf("- Custom symbols: %s\n", symbolList(runeKeys(cfg.Symbols))))
		}
		if len(cfg.Branches) > 0 {
			b.WriteString("- Branch symbols:\n")
			for _, sym := range sortedRunes(runeKeys(cfg.Branches)) {
				o := cfg.Branches[sym]
				kind := "wood"
				if o.Kind != nil {
					kind = *o.Kind
				}
				note := ""
				if o.Scale != nil && *o.Scale == 0 {
					note = " (zero-length pivot)"
				}
				b.WriteString(fmt.Sprintf("  - `%c`: %s%s\n", sym, kind, note))
			}
		}
		if len(cfg.Leaves) > 0 {
			b.WriteString("- Leaf symbols:\n")
			for _, sym := range sortedRunes(runeKeys(cfg.Leaves)) {
				b.WriteString(fmt.Sprintf("  - `%c`: %s\n", sym, cfg.Leaves[sym].Kind))
			}
		}
		b.WriteString("\n")
	}
	return docFile{Name: "archetypes.md", Title: "Plant Archetypes", Content: b.String()}
}

func runeKeys[V any](m map[rune]V) []rune {
	out := make([]rune, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	return out
}

func sortedRunes(runes []rune) []rune {
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

func symbolList(runes []rune) string {
	parts := make([]string, 0, len(runes))
	for _, sym := range sortedRunes(runes) {
		parts = append(parts, fmt.Sprintf("`%c`", sym))
	}
	return strings.Join(parts, ", ")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
