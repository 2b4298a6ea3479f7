package plant

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one joint of the branching structure built by the turtle. The tree
// is strictly parent-owns-children; nodes are discarded after emission.
type Node struct {
	Position      rl.Vector3
	Level         int
	Children      []*Node
	Leaves        []LeafData
	LeafWeightSum float32
	BranchWeight  float32
	Load          float32
	RadiusStart   float32
	RadiusEnd     float32
	Orientation   rl.Quaternion
	Kind          string
	Group         int
	Opts          *PartOpts
}

// BranchData is one emitted branch segment, immutable once emitted. Prev and
// Next link adjacent same-kind segments of an unbranched run so the geometry
// layer can average the shared vertex ring into a seamless join.
type BranchData struct {
	Start       rl.Vector3    `json:"start"`
	End         rl.Vector3    `json:"end"`
	RadiusStart float32       `json:"radius_start"`
	RadiusEnd   float32       `json:"radius_end"`
	Level       int           `json:"level"`
	Orientation rl.Quaternion `json:"orientation"`
	Kind        string        `json:"kind,omitempty"`
	Group       int           `json:"group"`
	Opts        *PartOpts     `json:"opts,omitempty"`
	Prev        *BranchData   `json:"-"`
	Next        *BranchData   `json:"-"`
}

// LeafData is one emitted leaf or attachment point.
type LeafData struct {
	Position    rl.Vector3    `json:"position"`
	Up          rl.Vector3    `json:"up"`
	Orientation rl.Quaternion `json:"orientation"`
	Kind        string        `json:"kind,omitempty"`
	Group       int           `json:"group"`
	Opts        *PartOpts     `json:"opts,omitempty"`
}

// Plant is the output of one generation run.
type Plant struct {
	Branches []*BranchData `json:"branches"`
	Leaves   []LeafData    `json:"leaves"`
	// Warnings lists symbols that matched no rule; a typo indicator, never
	// an error.
	Warnings []string `json:"warnings,omitempty"`
}
