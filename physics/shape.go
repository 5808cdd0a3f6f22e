package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// minHalfExtent keeps footprints registered with the cp index from
// collapsing to zero area.
const minHalfExtent = 1e-6

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB builds a box from its centre and half extents.
func NewAABB(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) HalfExtents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Overlaps reports strict overlap; touching faces do not count.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// Expand grows the box by half on every side (Minkowski sum with a box).
func (a AABB) Expand(half mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Sub(half), Max: a.Max.Add(half)}
}

// Translate moves the box by v.
func (a AABB) Translate(v mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(v), Max: a.Max.Add(v)}
}

// Union returns the smallest box containing a and b.
func (a AABB) Union(b AABB) AABB {
	var out AABB
	for i := 0; i < 3; i++ {
		out.Min[i] = min(a.Min[i], b.Min[i])
		out.Max[i] = max(a.Max[i], b.Max[i])
	}
	return out
}

// footprint projects the box onto the ground plane used by the cp index:
// world X maps to cp X and world Z maps to cp Y.
func (a AABB) footprint() cp.BB {
	return cp.BB{L: a.Min.X(), B: a.Min.Z(), R: a.Max.X(), T: a.Max.Z()}
}

// Box is an axis-aligned box relative to a collider's position.
type Box struct {
	Offset      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// At returns the box placed at pos.
func (b Box) At(pos mgl64.Vec3) AABB {
	return NewAABB(pos.Add(b.Offset), b.HalfExtents)
}

func (b Box) sanitized() Box {
	for i := 0; i < 3; i++ {
		if b.HalfExtents[i] < minHalfExtent {
			b.HalfExtents[i] = minHalfExtent
		}
	}
	return b
}
