// Package plant generates vegetation structure from a parametric, stochastic
// L-system: a grammar engine expands an axiom into a terminal instruction
// string, a turtle interprets it into a branching node tree under simulated
// forces, and a structural post-processor derives branch radii and lengths
// before the tree is flattened into branch and leaf records for an external
// geometry builder.
package plant

// Generate runs the full pipeline for one plant. Every run builds a fresh
// node tree and discards it after emission; the same config and seed always
// produce the same plant.
func Generate(cfg Config, seed int64) (*Plant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	rng := seededRNG(seed)

	instructions := expand(cfg.Axiom, cfg.Rules, cfg.Params.Iterations, cfg.FinalRule, rng)

	t := newTurtle(&cfg, rng)
	root := t.run(instructions)

	computeLoads(root)
	adjustVigor(root)
	assignRadii(root, cfg.Params)

	branches, leaves := emit(root)
	return &Plant{
		Branches: branches,
		Leaves:   leaves,
		Warnings: t.warnings(),
	}, nil
}
