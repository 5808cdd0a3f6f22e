package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalMotionFacingX(t *testing.T) {
	f := newFixture(t, physics.DefaultOffset)
	f.transform(t).Rotation = component.FacingYaw(-math.Pi / 2)
	*f.input(t) = component.Input{Forward: true, Left: true}
	f.add(t, ecs.PhaseMotion, NewHorizontalMotionSystem(f.tuning))

	f.sched.Tick(f.w, dt)

	s := math.Sqrt2 / 2 * 8 * dt
	got := f.character(t).PendingDirection
	assert.InDelta(t, s, got.X(), 1e-12)
	assert.InDelta(t, -s, got.Z(), 1e-12)
	assert.Equal(t, 0.0, got.Y())
}

func TestHorizontalMotionSumPolicy(t *testing.T) {
	f := newFixture(t, physics.DefaultOffset)
	tu := tuning.Default()
	tu.Diagonal = tuning.DiagonalSum
	require.NoError(t, f.tuning.Set(tu))
	*f.input(t) = component.Input{Forward: true, Right: true}
	f.add(t, ecs.PhaseMotion, NewHorizontalMotionSystem(f.tuning))

	f.sched.Tick(f.w, dt)

	got := f.character(t).PendingDirection
	assert.InDelta(t, 8*dt, got.X(), 1e-12)
	assert.InDelta(t, -8*dt, got.Z(), 1e-12)
}

func TestVerticalMotionBranches(t *testing.T) {
	tests := []struct {
		name      string
		grounded  bool
		launched  bool
		accel     float64
		wantAccel float64
	}{
		{name: "grounded decays", grounded: true, accel: 20, wantAccel: 20 - 18*2.2*dt},
		{name: "grounded floor", grounded: true, accel: 9.8, wantAccel: 9.8},
		{name: "airborne accumulates", accel: 9.8, wantAccel: 9.8 + 9.8*18*dt},
		{name: "launch keeps impulse", grounded: true, launched: true, accel: -70.2, wantAccel: -70.2},
		{name: "rising near the ground keeps gravity", grounded: true, accel: -70.2, wantAccel: -70.2 + 9.8*18*dt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, physics.DefaultOffset)
			c := f.character(t)
			c.Grounded = tt.grounded
			c.Launched = tt.launched
			c.VerticalAccel = tt.accel
			f.add(t, ecs.PhaseMotion, NewVerticalMotionSystem(f.tuning))

			f.sched.Tick(f.w, dt)

			assert.InDelta(t, tt.wantAccel, c.VerticalAccel, 1e-9)
			assert.InDelta(t, -tt.wantAccel*0.2*dt, c.PendingDirection.Y(), 1e-12)
		})
	}
}

func TestKinematicDriverZeroesPending(t *testing.T) {
	f := newFixture(t, physics.DefaultOffset)
	want := mgl64.Vec3{0.1, -0.02, 0.3}
	f.character(t).PendingDirection = want
	f.add(t, ecs.PhaseApply, NewKinematicDriverSystem(f.pw))

	f.sched.Tick(f.w, dt)

	assert.Equal(t, mgl64.Vec3{}, f.character(t).PendingDirection)
	body, _ := ecs.Get(f.w, f.e, component.KinematicBodyComponent.Kind())
	pending, ok := f.pw.Pending(body.Collider)
	require.True(t, ok)
	assert.Equal(t, want, pending)
}

func TestKinematicDriverUnknownCollider(t *testing.T) {
	f := newFixture(t, physics.DefaultOffset)
	body, _ := ecs.Get(f.w, f.e, component.KinematicBodyComponent.Kind())
	f.pw.Remove(body.Collider)
	f.character(t).PendingDirection = mgl64.Vec3{1, 0, 0}
	f.add(t, ecs.PhaseApply, NewKinematicDriverSystem(f.pw))

	assert.NotPanics(t, func() { f.sched.Tick(f.w, dt) })
	assert.Equal(t, mgl64.Vec3{}, f.character(t).PendingDirection)
}

func TestPhysicsSystemSyncsTransform(t *testing.T) {
	f := newFixture(t, 1)
	f.character(t).PendingDirection = mgl64.Vec3{0.5, -2, 0}
	f.add(t, ecs.PhaseApply, NewKinematicDriverSystem(f.pw))
	f.add(t, ecs.PhaseResolve, NewPhysicsSystem(f.pw))

	f.sched.Tick(f.w, dt)

	tr := f.transform(t)
	assert.InDelta(t, 0.5, tr.Position.X(), 1e-9)
	assert.InDelta(t, bodyHalf.Y()+physics.DefaultOffset, tr.Position.Y(), 1e-9)

	body, _ := ecs.Get(f.w, f.e, component.KinematicBodyComponent.Kind())
	assert.True(t, body.Output.Grounded)
	assert.Equal(t, mgl64.Vec3{0.5, -2, 0}, body.Output.Desired)
	assert.InDelta(t, -(1 - physics.DefaultOffset), body.Output.Translation.Y(), 1e-9)
	assert.Equal(t, 1, body.Output.Collisions)
}

func TestTintFollowsGround(t *testing.T) {
	f := newFixture(t, physics.DefaultOffset)
	f.add(t, ecs.PhaseSense, NewGroundSensorSystem(f.pw))
	f.add(t, ecs.PhasePresent, NewTintSystem())
	tint, _ := ecs.Get(f.w, f.e, component.TintComponent.Kind())

	f.sched.Tick(f.w, dt)
	assert.Equal(t, groundedTint, tint.Color)

	body, _ := ecs.Get(f.w, f.e, component.KinematicBodyComponent.Kind())
	require.NoError(t, f.pw.SetPosition(body.Collider, mgl64.Vec3{0, 4, 0}))
	f.sched.Tick(f.w, dt)
	assert.Equal(t, airborneTint, tint.Color)
}
