package physics

import "github.com/jakecoffman/cp"

const (
	categoryStatic uint = 1 << iota
	categoryKinematic

	allCategories = ^uint(0)
)

// QueryFilter restricts which colliders a query may report.
type QueryFilter struct {
	// ExcludeKinematic skips every kinematic collider, so characters never
	// see each other (or themselves) as ground.
	ExcludeKinematic bool
	// Exclude skips one collider, normally the one issuing the query.
	Exclude ColliderID
}

// shapeFilter maps the filter onto cp's group/category rules: a kinematic
// collider's shape carries its own id as group, so a query whose group
// equals that id rejects it.
func (f QueryFilter) shapeFilter() cp.ShapeFilter {
	mask := allCategories
	if f.ExcludeKinematic {
		mask &^= categoryKinematic
	}
	return cp.ShapeFilter{
		Group:      uint(f.Exclude),
		Categories: allCategories,
		Mask:       mask,
	}
}

func (c *collider) shapeFilter() cp.ShapeFilter {
	switch c.kind {
	case Kinematic:
		return cp.ShapeFilter{Group: uint(c.id), Categories: categoryKinematic, Mask: allCategories}
	default:
		return cp.ShapeFilter{Group: 0, Categories: categoryStatic, Mask: allCategories}
	}
}
