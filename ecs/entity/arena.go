package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/prefabs"
)

// DefaultArenaPrefab is the arena shipped with the prefabs.
const DefaultArenaPrefab = "arena.yaml"

// Arena is what BuildArena loaded.
type Arena struct {
	Name   string
	Bounds physics.AABB
	Spawns []mgl64.Vec3
}

// BuildArena registers every box of an arena prefab as a static collider
// and mirrors it as an entity so renderers can find it.
func BuildArena(w *ecs.World, pw *physics.World, prefab string) (Arena, error) {
	if pw == nil {
		return Arena{}, ErrNoPhysics
	}
	if w == nil {
		return Arena{}, fmt.Errorf("build arena: world is nil")
	}
	if prefab == "" {
		prefab = DefaultArenaPrefab
	}

	spec, err := prefabs.LoadArenaSpec(prefab)
	if err != nil {
		return Arena{}, fmt.Errorf("build arena: %w", err)
	}
	if len(spec.Boxes) == 0 {
		return Arena{}, fmt.Errorf("build arena: %q has no boxes", prefab)
	}
	for i, b := range spec.Boxes {
		if !positive(mgl64.Vec3(b.HalfExtents)) {
			return Arena{}, fmt.Errorf("build arena: %q box %d (%s): %w", prefab, i, b.Name, ErrInvalidExtent)
		}
	}

	arena := Arena{Name: spec.Name}
	for i, b := range spec.Boxes {
		center := mgl64.Vec3(b.Center)
		half := mgl64.Vec3(b.HalfExtents)
		id := pw.AddStatic(center, half)

		box := physics.NewAABB(center, half)
		if i == 0 {
			arena.Bounds = box
		} else {
			arena.Bounds = arena.Bounds.Union(box)
		}

		e := ecs.CreateEntity(w)
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("box-%d", i)
		}
		if err := addStatic(w, e, name, center, id, half); err != nil {
			return Arena{}, fmt.Errorf("build arena: %q: %w", prefab, err)
		}
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{Bounds: arena.Bounds}); err != nil {
		return Arena{}, fmt.Errorf("build arena: %q: %w", prefab, err)
	}

	for _, s := range spec.Spawns {
		arena.Spawns = append(arena.Spawns, mgl64.Vec3(s))
	}
	return arena, nil
}

func addStatic(w *ecs.World, e ecs.Entity, name string, center mgl64.Vec3, id physics.ColliderID, half mgl64.Vec3) error {
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: center, Rotation: mgl64.QuatIdent()}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.StaticBodyComponent.Kind(), &component.StaticBody{Collider: id, HalfExtents: half})
}
