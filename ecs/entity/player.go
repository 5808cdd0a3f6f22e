package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/tuning"
)

// DefaultCharacterPrefab is the character shipped with the prefabs.
const DefaultCharacterPrefab = "character.yaml"

// SpawnCharacter builds a character from prefab and registers its
// kinematic collider with pw. A non-nil at overrides the prefab position.
func SpawnCharacter(w *ecs.World, pw *physics.World, prefab string, t tuning.Tuning, at *mgl64.Vec3) (ecs.Entity, error) {
	if pw == nil {
		return 0, ErrNoPhysics
	}
	if prefab == "" {
		prefab = DefaultCharacterPrefab
	}
	return buildEntity(w, &buildContext{
		PrefabPath: prefab,
		Physics:    pw,
		Tuning:     t,
		Position:   at,
	})
}
