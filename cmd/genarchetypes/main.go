package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/verdant/internal/archetype"
)

// Manifest lists the archetype pools to pre-generate.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

type Job struct {
	Archetype string `yaml:"archetype"`
	Variants  int    `yaml:"variants"`
	Seed      int64  `yaml:"seed"`
}

func main() {
	var (
		jobsPath string
		outDir   string
		force    bool
	)
	flag.StringVar(&jobsPath, "jobs", filepath.Join("assets", "pools.yaml"), "YAML manifest of pools to generate")
	flag.StringVar(&outDir, "out", filepath.Join("assets", "pools"), "output directory for pool JSON")
	flag.BoolVar(&force, "force", false, "regenerate pools even if JSON exists")
	flag.Parse()

	manifest, err := loadManifest(jobsPath)
	if err != nil {
		fatal(err)
	}
	if len(manifest.Jobs) == 0 {
		fatal(fmt.Errorf("no jobs in %s", jobsPath))
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatal(err)
	}

	for _, job := range manifest.Jobs {
		path := filepath.Join(outDir, job.Archetype+".json")
		if !force {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("skip %s (exists, use -force)\n", path)
				continue
			}
		}
		a, err := archetype.Find(job.Archetype)
		if err != nil {
			fatal(err)
		}
		pool, err := archetype.Pregenerate(a, archetype.PoolOptions{Variants: job.Variants, Seed: job.Seed})
		if err != nil {
			fatal(err)
		}
		if err := writePool(path, pool); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s (%d variants)\n", path, len(pool.Variants))
	}
}

func loadManifest(path string) (Manifest, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(blob, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

func writePool(path string, pool *archetype.Pool) error {
	blob, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return err
	}
	blob = append(blob, '\n')
	return os.WriteFile(path, blob, 0o644)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
