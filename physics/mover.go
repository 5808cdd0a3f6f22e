package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveResult reports what the mover did with a requested translation.
type MoveResult struct {
	Collider    ColliderID
	Desired     mgl64.Vec3
	Translation mgl64.Vec3
	// Grounded is true when downward motion was stopped by a surface.
	Grounded   bool
	Collisions int
}

// resolution order: vertical first, then the two ground-plane axes.
var moveAxes = [3]int{1, 0, 2}

// SetTranslation records the desired translation of a kinematic collider
// for the next Step, replacing any earlier request.
func (w *World) SetTranslation(id ColliderID, translation mgl64.Vec3) error {
	c, ok := w.colliders[id]
	if !ok {
		return ErrUnknownCollider
	}
	if c.kind != Kinematic {
		return ErrNotKinematic
	}
	c.pending = sanitizeVec(translation)
	c.hasPending = true
	return nil
}

// Pending returns the translation waiting for the next Step.
func (w *World) Pending(id ColliderID) (mgl64.Vec3, bool) {
	c, ok := w.colliders[id]
	if !ok || !c.hasPending {
		return mgl64.Vec3{}, false
	}
	return c.pending, true
}

// Step resolves every pending translation, in collider id order, and
// returns one result per moved collider.
func (w *World) Step() []MoveResult {
	var out []MoveResult
	for _, id := range w.sortedIDs() {
		c := w.colliders[id]
		if !c.hasPending {
			continue
		}
		translation := c.pending
		c.pending = mgl64.Vec3{}
		c.hasPending = false
		out = append(out, w.move(c, translation))
	}
	return out
}

// Move immediately resolves translation for a kinematic collider.
func (w *World) Move(id ColliderID, translation mgl64.Vec3) (MoveResult, error) {
	c, ok := w.colliders[id]
	if !ok {
		return MoveResult{}, ErrUnknownCollider
	}
	if c.kind != Kinematic {
		return MoveResult{}, ErrNotKinematic
	}
	return w.move(c, sanitizeVec(translation)), nil
}

// move slides the collider's movement box one axis at a time, stopping
// each axis at the first obstacle minus the skin offset.
func (w *World) move(c *collider, translation mgl64.Vec3) MoveResult {
	res := MoveResult{Collider: c.id, Desired: translation}
	start := c.position
	pos := c.position
	filter := QueryFilter{Exclude: c.id}

	for _, axis := range moveAxes {
		delta := translation[axis]
		if math.Abs(delta) < parallelEpsilon {
			continue
		}
		allowed, blocked := w.sweepAxis(c, pos, axis, delta, filter)
		pos[axis] += allowed
		if blocked {
			res.Collisions++
			if axis == 1 && delta < 0 {
				res.Grounded = true
			}
		}
	}

	c.position = pos
	w.reindex(c)
	res.Translation = pos.Sub(start)
	return res
}

func (w *World) sweepAxis(c *collider, pos mgl64.Vec3, axis int, delta float64, filter QueryFilter) (float64, bool) {
	var dir mgl64.Vec3
	dir[axis] = math.Copysign(1, delta)
	distance := math.Abs(delta)

	box := c.move.At(pos)
	center := box.Center()
	half := c.move.HalfExtents
	swept := box.Union(box.Translate(dir.Mul(distance)))

	allowed := distance
	blocked := false
	for _, other := range w.candidates(swept, filter) {
		obstacle := other.bounds()
		// already overlapping: let the body move out instead of pinning it
		if box.Overlaps(obstacle) {
			continue
		}
		t, _, ok := rayAABB(center, dir, obstacle.Expand(half))
		if !ok || t > distance+w.offset {
			continue
		}
		if reach := math.Max(0, t-w.offset); reach < allowed {
			allowed = reach
			blocked = true
		}
	}
	return math.Copysign(allowed, delta), blocked
}

func sanitizeVec(v mgl64.Vec3) mgl64.Vec3 {
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			v[i] = 0
		}
	}
	return v
}
