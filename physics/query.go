package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const parallelEpsilon = 1e-12

// Hit describes the first contact of a ray or swept box.
type Hit struct {
	Collider ColliderID
	// Distance travelled along the normalised direction before contact
	// (time of impact for unit speed). Zero when already penetrating.
	Distance float64
	// Point is the ray point, or the swept box centre, at contact.
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// CastRay returns the closest collider hit by a ray of length maxDistance.
func (w *World) CastRay(origin, dir mgl64.Vec3, maxDistance float64, filter QueryFilter) (Hit, bool) {
	return w.CastShape(origin, mgl64.Vec3{}, dir, maxDistance, filter)
}

// CastShape sweeps an axis-aligned box with the given half extents from
// center along dir and returns the first collider it would touch within
// maxDistance. The world is not modified.
func (w *World) CastShape(center, halfExtents, dir mgl64.Vec3, maxDistance float64, filter QueryFilter) (Hit, bool) {
	if w == nil || maxDistance < 0 || math.IsNaN(maxDistance) {
		return Hit{}, false
	}
	length := dir.Len()
	if length < parallelEpsilon || math.IsNaN(length) {
		return Hit{}, false
	}
	dir = dir.Mul(1 / length)

	start := NewAABB(center, halfExtents)
	swept := start.Union(start.Translate(dir.Mul(maxDistance)))

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, c := range w.candidates(swept, filter) {
		t, normal, ok := rayAABB(center, dir, c.bounds().Expand(halfExtents))
		if !ok || t > maxDistance || t >= best.Distance {
			continue
		}
		best = Hit{Collider: c.id, Distance: t, Point: center.Add(dir.Mul(t)), Normal: normal}
		found = true
	}
	return best, found
}

// rayAABB intersects a ray with a box using the slab method. dir must be
// normalised. A ray starting inside the box reports distance zero with the
// normal facing back along the ray. On axes the ray runs parallel to, the
// origin must lie strictly between the slabs, so grazing a face is a miss.
func rayAABB(origin, dir mgl64.Vec3, box AABB) (float64, mgl64.Vec3, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	var normal mgl64.Vec3
	entered := false

	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := box.Min[axis], box.Max[axis]
		if math.Abs(d) < parallelEpsilon {
			if o <= lo || o >= hi {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		face := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			face = 1
		}
		if t1 >= tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[axis] = face
			entered = true
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	if tmax <= 0 {
		return 0, mgl64.Vec3{}, false
	}
	if !entered {
		return 0, dir.Mul(-1), true
	}
	return tmin, normal, true
}
