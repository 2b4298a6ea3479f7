package plant

import (
	"fmt"
	"math/rand/v2"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Turtle walks a terminal instruction string and builds the node tree. It
// keeps an explicit state machine: position, orientation, the active branch
// parameters, and a push/pop stack of full snapshots.
type Turtle struct {
	cfg    *Config
	rng    *rand.Rand
	pos    rl.Vector3
	orient rl.Quaternion
	params BranchParams
	stack  []turtleFrame
	node   *Node
	root   *Node

	unknown map[rune]int
}

// turtleFrame is a full snapshot restored by `]`. Position, orientation and
// params are value copies, not references, so mutation after a push cannot
// leak into the saved state.
type turtleFrame struct {
	pos    rl.Vector3
	orient rl.Quaternion
	params BranchParams
	node   *Node
}

func newTurtle(cfg *Config, rng *rand.Rand) *Turtle {
	root := &Node{Orientation: rl.QuaternionIdentity()}
	return &Turtle{
		cfg:     cfg,
		rng:     rng,
		orient:  rl.QuaternionIdentity(),
		params:  cfg.Defaults,
		node:    root,
		root:    root,
		unknown: map[rune]int{},
	}
}

// run interprets the terminal string and returns the root node.
func (t *Turtle) run(instructions string) *Node {
	for _, tk := range tokenize(instructions) {
		t.exec(tk.sym)
	}
	return t.root
}

func (t *Turtle) exec(sym rune) {
	switch sym {
	case '^':
		t.ResetUp()
		return
	case '&':
		t.Bend(t.params.Spread + t.jitter())
		return
	case '/':
		t.Rotate(t.params.Angle + t.jitter())
		return
	case '[':
		t.Push()
		return
	case ']':
		t.Pop()
		return
	}
	if fn, ok := t.cfg.Symbols[sym]; ok {
		fn(t)
		return
	}
	if o, ok := t.cfg.Branches[sym]; ok {
		t.Branch(o)
		return
	}
	if lp, ok := t.cfg.Leaves[sym]; ok {
		t.Leaf(lp)
		return
	}
	// The `+` leaf shorthand exists only while no leaf symbols are declared.
	if sym == '+' && len(t.cfg.Leaves) == 0 {
		t.Leaf(LeafParams{})
		return
	}
	t.unknown[sym]++
}

// Depth is the current stack depth, which becomes the level of nodes created
// now. It reflects generation order, not structural tree depth.
func (t *Turtle) Depth() int {
	return len(t.stack)
}

// Position is the turtle's current world position.
func (t *Turtle) Position() rl.Vector3 {
	return t.pos
}

// Rand exposes the run's random source so custom symbols draw from the same
// seeded stream.
func (t *Turtle) Rand() *rand.Rand {
	return t.rng
}

// Params returns the active branch parameters, including any set by an
// earlier pseudo-branch.
func (t *Turtle) Params() BranchParams {
	return t.params
}

// Push saves a full state snapshot.
func (t *Turtle) Push() {
	t.stack = append(t.stack, turtleFrame{
		pos:    t.pos,
		orient: t.orient,
		params: t.params,
		node:   t.node,
	})
}

// Pop restores the most recent snapshot, returning the cursor to the
// junction node. Popping an empty stack is ignored.
func (t *Turtle) Pop() {
	if len(t.stack) == 0 {
		return
	}
	frame := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.pos = frame.pos
	t.orient = frame.orient
	t.params = frame.params
	t.node = frame.node
}

// ResetUp points the turtle back at world-up, then perturbs it by a small
// random Euler rotation sized by the active jitter.
func (t *Turtle) ResetUp() {
	t.orient = rl.QuaternionIdentity()
	j := t.params.Jitter
	if j == 0 {
		return
	}
	perturb := rl.QuaternionFromEuler(
		t.jitter()*deg2Rad,
		t.jitter()*deg2Rad,
		t.jitter()*deg2Rad,
	)
	t.orient = rl.QuaternionNormalize(rl.QuaternionMultiply(perturb, t.orient))
}

// Bend pitches the turtle by deg degrees about its local X axis.
func (t *Turtle) Bend(deg float32) {
	t.rotateLocal(rl.NewVector3(1, 0, 0), deg)
}

// Rotate yaws the turtle by deg degrees about its local Y axis.
func (t *Turtle) Rotate(deg float32) {
	t.rotateLocal(rl.NewVector3(0, 1, 0), deg)
}

func (t *Turtle) rotateLocal(axis rl.Vector3, deg float32) {
	q := rl.QuaternionFromAxisAngle(axis, deg*deg2Rad)
	t.orient = rl.QuaternionNormalize(rl.QuaternionMultiply(t.orient, q))
}

func (t *Turtle) jitter() float32 {
	if t.params.Jitter == 0 {
		return 0
	}
	return (t.rng.Float32() - 0.5) * t.params.Jitter
}

// Branch merges the override into the active parameters, bends the heading
// under the force model, and grows one segment. A resulting length <= 0 adds
// no geometry but keeps every state change, which is what makes zero-length
// pseudo-branches usable as pure parameter pivots.
func (t *Turtle) Branch(o BranchOverride) {
	t.params = t.params.Apply(o)
	p := t.params

	length := t.cfg.Params.Length * p.Scale * powf(t.cfg.Params.LengthDecay, float32(len(t.stack)))
	t.applyForces(p)
	if length <= 0 {
		return
	}

	dir := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), t.orient)
	end := rl.Vector3Add(t.pos, rl.Vector3Scale(dir, length))
	child := &Node{
		Position:     end,
		Level:        len(t.stack),
		BranchWeight: p.Weight,
		Orientation:  t.orient,
		Kind:         p.Kind,
		Group:        p.Group,
		Opts:         p.Opts,
	}
	t.node.Children = append(t.node.Children, child)
	t.node = child
	t.pos = end
}

// Leaf attaches a leaf record to the current node.
func (t *Turtle) Leaf(lp LeafParams) {
	w := lp.Weight
	if w == 0 {
		w = 1
	}
	t.node.LeafWeightSum += w
	t.node.Leaves = append(t.node.Leaves, LeafData{
		Position:    t.pos,
		Up:          rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), t.orient),
		Orientation: t.orient,
		Kind:        lp.Kind,
		Group:       lp.Group,
		Opts:        lp.Opts,
	})
}

// warnings reports unknown symbols encountered during the run, sorted for
// stable output.
func (t *Turtle) warnings() []string {
	if len(t.unknown) == 0 {
		return nil
	}
	syms := make([]rune, 0, len(t.unknown))
	for sym := range t.unknown {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	out := make([]string, 0, len(syms))
	for _, sym := range syms {
		out = append(out, fmt.Sprintf("symbol %q matched no custom symbol, branch, or leaf (x%d)", sym, t.unknown[sym]))
	}
	return out
}
