package plant

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// minTipLoad floors the load of bare tips so even a leafless, weightless
// terminal node gets a visible radius.
const minTipLoad = 0.5

// Vigor remaps a segment's length into [20%, 120%] of nominal: a branch
// carrying all of its parent's load stretches, one carrying none shrinks.
const (
	vigorMinScale = 0.2
	vigorMaxScale = 1.2
)

// computeLoads fills in Load for every node, bottom-up: own leaf weight plus
// each child's load and branch weight.
func computeLoads(n *Node) float32 {
	load := n.LeafWeightSum
	for _, c := range n.Children {
		load += computeLoads(c) + c.BranchWeight
	}
	if load == 0 {
		load = minTipLoad
	}
	n.Load = load
	return load
}

// adjustVigor rescales each segment's length by the fraction of its parent's
// load it carries, shifting the whole subtree to follow. Top-down order is
// required: a child's final position depends on its parent's final position.
func adjustVigor(n *Node) {
	for _, c := range n.Children {
		vigor := float32(0)
		if n.Load > 0 {
			vigor = (c.Load + c.BranchWeight) / n.Load
		}
		seg := rl.Vector3Subtract(c.Position, n.Position)
		curLen := rl.Vector3Length(seg)
		if curLen > vecEpsilon {
			newLen := curLen*vigorMinScale + (curLen*vigorMaxScale-curLen*vigorMinScale)*sqrtf(vigor)
			offset := rl.Vector3Scale(seg, (newLen-curLen)/curLen)
			shiftSubtree(c, offset)
		}
		adjustVigor(c)
	}
}

func shiftSubtree(n *Node, offset rl.Vector3) {
	n.Position = rl.Vector3Add(n.Position, offset)
	for i := range n.Leaves {
		n.Leaves[i].Position = rl.Vector3Add(n.Leaves[i].Position, offset)
	}
	for _, c := range n.Children {
		shiftSubtree(c, offset)
	}
}

// assignRadii derives branch thickness from load via the pipe model. The
// scaler is chosen so the root's radius is exactly the configured trunk
// thickness. With a taper rate configured, each segment additionally thins
// along its (post-vigor) length, floored at the minimum twig radius and
// capped so no segment starts wider than its parent ends.
func assignRadii(root *Node, g Growth) {
	scaler := float32(1)
	if root.Load > 0 {
		scaler = g.Thickness / powf(root.Load, g.ThicknessDecay)
	}
	root.RadiusStart = g.Thickness
	root.RadiusEnd = g.Thickness

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			r := scaler * powf(c.Load, g.ThicknessDecay)
			c.RadiusStart = r
			c.RadiusEnd = r
			if g.TaperRate > 0 {
				if c.RadiusStart > n.RadiusEnd {
					c.RadiusStart = n.RadiusEnd
				}
				length := rl.Vector3Distance(c.Position, n.Position)
				end := c.RadiusStart - length*g.TaperRate
				if end < g.MinTwigRadius {
					end = g.MinTwigRadius
				}
				c.RadiusEnd = end
			}
			walk(c)
		}
	}
	walk(root)
}
