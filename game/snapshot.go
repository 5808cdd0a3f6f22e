package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
)

// Snapshot is a read-only copy of the player's movement state.
type Snapshot struct {
	Tick            uint64
	Position        mgl64.Vec3
	Yaw             float64
	VerticalAccel   float64
	HorizontalSpeed float64
	Grounded        bool
	Launched        bool
	Dashing         bool
	Translation     mgl64.Vec3
	Tint            color.RGBA
}

func (s *Session) Snapshot() (Snapshot, error) {
	w, e := s.World, s.player
	snap := Snapshot{Tick: w.Tick()}

	c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		return Snapshot{}, ErrNoPlayer
	}
	snap.VerticalAccel = c.VerticalAccel
	snap.HorizontalSpeed = c.HorizontalSpeed
	snap.Grounded = c.Grounded
	snap.Launched = c.Launched

	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		snap.Position = tr.Position
		snap.Yaw = tr.Yaw()
	}
	if body, ok := ecs.Get(w, e, component.KinematicBodyComponent.Kind()); ok {
		snap.Translation = body.Output.Translation
	}
	if d, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
		snap.Dashing = d.Active
	}
	if t, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok {
		snap.Tint = t.Color
	}
	return snap, nil
}

func (s Snapshot) String() string {
	state := "air"
	if s.Grounded {
		state = "ground"
	}
	return fmt.Sprintf("tick=%d pos=(%.3f, %.3f, %.3f) accel=%.2f speed=%.1f %s",
		s.Tick, s.Position.X(), s.Position.Y(), s.Position.Z(), s.VerticalAccel, s.HorizontalSpeed, state)
}
