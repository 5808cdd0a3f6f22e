package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/tuning"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

var bodyHalf = mgl64.Vec3{0.4, 1.4, 0.4}

type fixture struct {
	w      *ecs.World
	pw     *physics.World
	sched  *ecs.Scheduler
	tuning *tuning.Store
	e      ecs.Entity
}

// newFixture places one character standing gap above a floor whose top is
// at y=0.
func newFixture(t *testing.T, gap float64) *fixture {
	t.Helper()

	pw := physics.NewWorld()
	pw.AddStatic(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 0.5, 20})

	f := &fixture{
		w:      ecs.NewWorld(),
		pw:     pw,
		sched:  ecs.NewScheduler(),
		tuning: tuning.NewStore(tuning.Default()),
	}
	f.e = f.addCharacter(t, mgl64.Vec3{0, bodyHalf.Y() + gap, 0})
	return f
}

func (f *fixture) addCharacter(t *testing.T, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	body := physics.Box{HalfExtents: bodyHalf}
	id := f.pw.AddKinematic(pos, body, nil)

	e := f.w.CreateEntity()
	require.NoError(t, ecs.Add(f.w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent()}))
	require.NoError(t, ecs.Add(f.w, e, component.CharacterComponent.Kind(), &component.Character{
		VerticalAccel:      9.8,
		HorizontalSpeed:    8,
		VerticalSpeedScale: 18,
	}))
	require.NoError(t, ecs.Add(f.w, e, component.GroundSensorComponent.Kind(), &component.GroundSensor{
		ContactTolerance: 0.16,
		ProbeHalfHeight:  0.2,
		ProbeRadius:      0.16,
		MaxSlopeAngle:    45,
		Mode:             component.ProbeShape,
		Distance:         -1,
	}))
	require.NoError(t, ecs.Add(f.w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{Collider: id, Body: body}))
	require.NoError(t, ecs.Add(f.w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(f.w, e, component.DashComponent.Kind(), &component.Dash{Duration: 0.4}))
	require.NoError(t, ecs.Add(f.w, e, component.TintComponent.Kind(), &component.Tint{}))
	return e
}

func (f *fixture) add(t *testing.T, phase ecs.Phase, s ecs.System) {
	t.Helper()
	require.NoError(t, f.sched.Add(phase, s))
}

func (f *fixture) character(t *testing.T) *component.Character {
	t.Helper()
	c, ok := ecs.Get(f.w, f.e, component.CharacterComponent.Kind())
	require.True(t, ok)
	return c
}

func (f *fixture) sensor(t *testing.T) *component.GroundSensor {
	t.Helper()
	s, ok := ecs.Get(f.w, f.e, component.GroundSensorComponent.Kind())
	require.True(t, ok)
	return s
}

func (f *fixture) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(f.w, f.e, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func (f *fixture) transform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func motionKinds(w *ecs.World) []ecs.MotionEventKind {
	var kinds []ecs.MotionEventKind
	for _, me := range MotionEvents(w.Events().Drain()) {
		kinds = append(kinds, me.Kind)
	}
	return kinds
}
