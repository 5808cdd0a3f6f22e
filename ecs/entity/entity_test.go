package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestSpawnCharacterFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()

	e, err := SpawnCharacter(w, pw, "", tuning.Default(), nil)
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))

	name, ok := ecs.Get(w, e, component.NameComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "player", name.Value)

	c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 8.0, c.HorizontalSpeed)
	assert.Equal(t, 18.0, c.VerticalSpeedScale)

	s, ok := ecs.Get(w, e, component.GroundSensorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 0.16, s.ContactTolerance)
	assert.Equal(t, component.ProbeShape, s.Mode)
	assert.Equal(t, 45.0, s.MaxSlopeAngle)

	body, ok := ecs.Get(w, e, component.KinematicBodyComponent.Kind())
	require.True(t, ok)
	kind, ok := pw.Kind(body.Collider)
	require.True(t, ok)
	assert.Equal(t, physics.Kinematic, kind)
	require.NotNil(t, body.MoveShape)
	assert.Equal(t, mgl64.Vec3{0, -1.2, 0}, body.MoveShape.Offset)

	pos, ok := pw.Position(body.Collider)
	require.True(t, ok)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, tr.Position, pos)

	d, ok := ecs.Get(w, e, component.DashComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 0.4, d.Duration)

	tint, ok := ecs.Get(w, e, component.TintComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, colornames.Lightcyan, tint.Color)
}

func TestSpawnCharacterAt(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()
	at := mgl64.Vec3{3, 5, -2}

	e, err := SpawnCharacter(w, pw, DefaultCharacterPrefab, tuning.Default(), &at)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, at, tr.Position)
	body, _ := ecs.Get(w, e, component.KinematicBodyComponent.Kind())
	pos, _ := pw.Position(body.Collider)
	assert.Equal(t, at, pos)
}

func TestSpawnCharacterErrors(t *testing.T) {
	w := ecs.NewWorld()

	_, err := SpawnCharacter(w, nil, "", tuning.Default(), nil)
	assert.ErrorIs(t, err, ErrNoPhysics)

	pw := physics.NewWorld()
	_, err = SpawnCharacter(w, pw, "missing.yaml", tuning.Default(), nil)
	assert.Error(t, err)

	// The arena prefab has no components section.
	_, err = SpawnCharacter(w, pw, "arena.yaml", tuning.Default(), nil)
	assert.Error(t, err)
	assert.Empty(t, ecs.Entities(w))
	assert.Zero(t, pw.Len())
}

func TestBuildArena(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()

	arena, err := BuildArena(w, pw, "")
	require.NoError(t, err)
	assert.Equal(t, "arena", arena.Name)
	assert.NotEmpty(t, arena.Spawns)

	statics := w.Query(component.StaticBodyComponent.Kind())
	assert.Equal(t, pw.Len(), len(statics))
	for _, e := range statics {
		sb, _ := ecs.Get(w, e, component.StaticBodyComponent.Kind())
		kind, ok := pw.Kind(sb.Collider)
		require.True(t, ok)
		assert.Equal(t, physics.Static, kind)
	}

	_, ok := w.First(component.ArenaBoundsComponent.Kind())
	assert.True(t, ok)
	assert.InDelta(t, 4.0, arena.Bounds.Max.Y(), 1e-9, "walls reach y=4")

	// The first spawn stands on the floor.
	hit, ok := pw.CastRay(arena.Spawns[0], mgl64.Vec3{0, -1, 0}, 10, physics.QueryFilter{})
	require.True(t, ok)
	assert.InDelta(t, 1.401, hit.Distance, 1e-9)
}

func TestBuildArenaErrors(t *testing.T) {
	_, err := BuildArena(ecs.NewWorld(), nil, "")
	assert.ErrorIs(t, err, ErrNoPhysics)

	_, err = BuildArena(ecs.NewWorld(), physics.NewWorld(), "character.yaml")
	assert.Error(t, err)
}
