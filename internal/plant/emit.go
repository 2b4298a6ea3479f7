package plant

// emit flattens the finished node tree, pre-order, into the branch and leaf
// output lists. Consecutive segments of an unbranched same-kind run are
// linked through Prev/Next so the geometry layer can join them seamlessly.
func emit(root *Node) ([]*BranchData, []LeafData) {
	var branches []*BranchData
	var leaves []LeafData

	var walk func(n *Node, incoming *BranchData)
	walk = func(n *Node, incoming *BranchData) {
		leaves = append(leaves, n.Leaves...)
		for _, c := range n.Children {
			b := &BranchData{
				Start:       n.Position,
				End:         c.Position,
				RadiusStart: c.RadiusStart,
				RadiusEnd:   c.RadiusEnd,
				Level:       c.Level,
				Orientation: c.Orientation,
				Kind:        c.Kind,
				Group:       c.Group,
				Opts:        c.Opts,
			}
			if incoming != nil && len(n.Children) == 1 && incoming.Kind == b.Kind {
				incoming.Next = b
				b.Prev = incoming
			}
			branches = append(branches, b)
			walk(c, b)
		}
	}
	walk(root, nil)
	return branches, leaves
}
