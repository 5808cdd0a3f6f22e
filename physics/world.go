package physics

import (
	"cmp"
	"errors"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// ColliderID identifies a collider inside a World. Zero is never assigned.
type ColliderID uint32

// BodyKind distinguishes immovable geometry from mover-driven bodies.
type BodyKind int

const (
	Static BodyKind = iota
	Kinematic
)

func (k BodyKind) String() string {
	if k == Kinematic {
		return "kinematic"
	}
	return "static"
}

// DefaultOffset is the gap the mover keeps between a kinematic body and
// whatever it is pressed against.
const DefaultOffset = 0.001

var (
	ErrUnknownCollider = errors.New("physics: unknown collider")
	ErrNotKinematic    = errors.New("physics: collider is not kinematic")
)

type collider struct {
	id       ColliderID
	kind     BodyKind
	position mgl64.Vec3
	body     Box
	move     Box
	shape    *cp.Shape

	pending    mgl64.Vec3
	hasPending bool
}

func (c *collider) bounds() AABB {
	return c.body.At(c.position)
}

// World is the collision collaborator: axis-aligned boxes indexed on the
// ground plane by a cp.Space, with spatial queries and a kinematic mover.
// The space is never stepped; cp only provides the broad phase and the
// shape filters.
type World struct {
	space     *cp.Space
	colliders map[ColliderID]*collider
	shapes    map[*cp.Shape]*collider
	nextID    ColliderID
	offset    float64
}

// Option configures a World.
type Option func(*World)

// WithOffset sets the skin kept between moved bodies and obstacles.
func WithOffset(offset float64) Option {
	return func(w *World) {
		if offset >= 0 {
			w.offset = offset
		}
	}
}

// NewWorld creates an empty collision world.
func NewWorld(opts ...Option) *World {
	w := &World{
		space:     cp.NewSpace(),
		colliders: make(map[ColliderID]*collider),
		shapes:    make(map[*cp.Shape]*collider),
		offset:    DefaultOffset,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Offset returns the mover skin.
func (w *World) Offset() float64 {
	return w.offset
}

// AddStatic registers immovable geometry centred at center.
func (w *World) AddStatic(center, halfExtents mgl64.Vec3) ColliderID {
	return w.add(Static, center, Box{HalfExtents: halfExtents}, nil)
}

// AddKinematic registers a mover-driven body at position. move overrides
// the box the mover sweeps; nil sweeps the body box.
func (w *World) AddKinematic(position mgl64.Vec3, body Box, move *Box) ColliderID {
	return w.add(Kinematic, position, body, move)
}

func (w *World) add(kind BodyKind, position mgl64.Vec3, body Box, move *Box) ColliderID {
	w.nextID++
	c := &collider{
		id:       w.nextID,
		kind:     kind,
		position: position,
		body:     body.sanitized(),
	}
	c.move = c.body
	if move != nil {
		c.move = move.sanitized()
	}
	w.colliders[c.id] = c
	w.reindex(c)
	return c.id
}

// Remove deletes a collider.
func (w *World) Remove(id ColliderID) bool {
	c, ok := w.colliders[id]
	if !ok {
		return false
	}
	if c.shape != nil {
		w.space.RemoveShape(c.shape)
		delete(w.shapes, c.shape)
	}
	delete(w.colliders, id)
	return true
}

// Has reports whether id is registered.
func (w *World) Has(id ColliderID) bool {
	_, ok := w.colliders[id]
	return ok
}

// Kind returns the body kind of id.
func (w *World) Kind(id ColliderID) (BodyKind, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return 0, false
	}
	return c.kind, true
}

// Position returns the collider position.
func (w *World) Position(id ColliderID) (mgl64.Vec3, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return c.position, true
}

// SetPosition teleports a collider without collision resolution.
func (w *World) SetPosition(id ColliderID, pos mgl64.Vec3) error {
	c, ok := w.colliders[id]
	if !ok {
		return ErrUnknownCollider
	}
	c.position = pos
	w.reindex(c)
	return nil
}

// Bounds returns the world-space body box of id.
func (w *World) Bounds(id ColliderID) (AABB, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return AABB{}, false
	}
	return c.bounds(), true
}

// Len reports the number of colliders.
func (w *World) Len() int {
	return len(w.colliders)
}

// Each visits colliders in id order.
func (w *World) Each(fn func(id ColliderID, kind BodyKind, bounds AABB)) {
	for _, id := range w.sortedIDs() {
		c := w.colliders[id]
		fn(c.id, c.kind, c.bounds())
	}
}

func (w *World) sortedIDs() []ColliderID {
	ids := make([]ColliderID, 0, len(w.colliders))
	for id := range w.colliders {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// reindex replaces the collider's footprint in the cp index. Footprints
// hang off the space's static body in world coordinates.
func (w *World) reindex(c *collider) {
	if c.shape != nil {
		w.space.RemoveShape(c.shape)
		delete(w.shapes, c.shape)
	}
	shape := cp.NewBox2(w.space.StaticBody, c.bounds().footprint(), 0)
	shape.SetFilter(c.shapeFilter())
	w.space.AddShape(shape)
	c.shape = shape
	w.shapes[shape] = c
}

// candidates returns colliders whose footprint touches area and that pass
// filter, in id order.
func (w *World) candidates(area AABB, filter QueryFilter) []*collider {
	var out []*collider
	w.space.BBQuery(area.footprint(), filter.shapeFilter(), func(shape *cp.Shape, data interface{}) {
		c, ok := w.shapes[shape]
		if !ok || c.id == filter.Exclude {
			return
		}
		if filter.ExcludeKinematic && c.kind == Kinematic {
			return
		}
		out = append(out, c)
	}, nil)
	slices.SortFunc(out, func(a, b *collider) int {
		return cmp.Compare(a.id, b.id)
	})
	return out
}
