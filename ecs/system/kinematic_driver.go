package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/physics"
	"github.com/rs/zerolog/log"
)

// KinematicDriverSystem hands each character's pending displacement to the
// mover and clears it.
type KinematicDriverSystem struct {
	world *physics.World
}

func NewKinematicDriverSystem(world *physics.World) *KinematicDriverSystem {
	return &KinematicDriverSystem{world: world}
}

func (k *KinematicDriverSystem) Update(w *ecs.World) {
	if k == nil || k.world == nil || w == nil {
		return
	}

	for _, c := range characters(w) {
		if c.body == nil {
			continue
		}
		if err := k.world.SetTranslation(c.body.Collider, c.character.PendingDirection); err != nil {
			log.Warn().Err(err).Stringer("entity", c.entity).Msg("drop pending displacement")
		}
		c.character.PendingDirection = mgl64.Vec3{}
	}
}
