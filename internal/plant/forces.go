package plant

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Caps keep any single force from folding a branch completely onto its
// target direction in one step.
const (
	maxGravityPull = 0.95
	maxWindPush    = 0.8
	maxSunPull     = 0.5
)

// applyForces bends the turtle's heading once per branch, before the segment
// endpoint is computed. Flexibility grows with stack depth so twigs sag and
// drift more than the trunk.
func (t *Turtle) applyForces(p BranchParams) {
	flex := powf(1.15, float32(len(t.stack)))

	if p.Gravity != 0 {
		target := rl.NewVector3(0, -1, 0)
		if p.Gravity < 0 {
			target = rl.NewVector3(0, 1, 0)
		}
		t.bendToward(target, minf(maxGravityPull, absf(p.Gravity)*flex))
	}

	if p.Wind != 0 {
		dir := p.WindDir
		if rl.Vector3Length(dir) < vecEpsilon {
			dir = rl.NewVector3(1, 0, 0)
		}
		t.bendToward(dir, minf(maxWindPush, p.Wind*flex))
	}

	if p.Heliotropism != 0 {
		t.bendToward(rl.NewVector3(0, 1, 0), minf(maxSunPull, p.Heliotropism*flex))
	}

	// Horizon bias is architectural intent rather than physical sag, so it
	// is deliberately not scaled by flexibility.
	if p.HorizonBias != 0 {
		if p.HorizonBias > 0 {
			heading := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), t.orient)
			flat := rl.NewVector3(heading.X, 0, heading.Z)
			t.bendToward(flat, p.HorizonBias)
		} else {
			t.bendToward(rl.NewVector3(0, 1, 0), -p.HorizonBias)
		}
	}

	if p.AntiShadow != 0 {
		away := rl.NewVector3(t.pos.X, 0, t.pos.Z)
		t.bendToward(away, p.AntiShadow)
	}
}

// bendToward rotates the heading part-way toward target by slerping against
// the fully bent orientation. The bend is the shortest-arc delta from the
// current heading, pre-multiplied onto the existing orientation, so roll
// accumulated by `/` rotations survives. Near-zero targets are skipped to
// keep NaN out of the quaternion.
func (t *Turtle) bendToward(target rl.Vector3, amount float32) {
	if amount <= 0 {
		return
	}
	if amount > 1 {
		amount = 1
	}
	if rl.Vector3Length(target) < vecEpsilon {
		return
	}
	heading := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), t.orient)
	if rl.Vector3Length(heading) < vecEpsilon {
		return
	}
	heading = rl.Vector3Normalize(heading)
	goal := rl.Vector3Normalize(target)

	var delta rl.Quaternion
	if rl.Vector3DotProduct(heading, goal) < -0.9999 {
		// Antiparallel headings have no unique shortest arc; rotate a half
		// turn about any axis perpendicular to the heading.
		delta = rl.QuaternionFromAxisAngle(perpendicular(heading), 180*deg2Rad)
	} else {
		delta = rl.QuaternionFromVector3ToVector3(heading, goal)
	}
	bent := rl.QuaternionMultiply(delta, t.orient)
	t.orient = rl.QuaternionNormalize(rl.QuaternionSlerp(t.orient, bent, amount))
}

func perpendicular(v rl.Vector3) rl.Vector3 {
	axis := rl.Vector3CrossProduct(v, rl.NewVector3(1, 0, 0))
	if rl.Vector3Length(axis) < vecEpsilon {
		axis = rl.Vector3CrossProduct(v, rl.NewVector3(0, 0, 1))
	}
	return rl.Vector3Normalize(axis)
}
