package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/prefabs"
	"github.com/milk9111/strider/tuning"
)

const (
	defaultVerticalSpeedScale = 18.0
	defaultContactTolerance   = 0.16
	defaultProbeHalfHeight    = 0.2
	defaultProbeRadius        = 0.16
	defaultMaxSlopeAngle      = 45.0
)

var (
	ErrNoPhysics     = errors.New("entity: physics world is nil")
	ErrInvalidExtent = errors.New("entity: half extents must be positive")
)

type buildContext struct {
	PrefabPath string
	Physics    *physics.World
	Tuning     tuning.Tuning
	// Position, when set, replaces the prefab's transform position.
	Position *mgl64.Vec3

	collider physics.ColliderID
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"name":           addName,
	"transform":      addTransform,
	"character":      addCharacter,
	"ground_sensor":  addGroundSensor,
	"kinematic_body": addKinematicBody,
	"input":          addInput,
	"dash":           addDash,
	"tint":           addTint,
}

// kinematic_body reads the transform, so it comes after it.
var componentBuildOrder = []string{
	"player_tag",
	"name",
	"transform",
	"character",
	"ground_sensor",
	"kinematic_body",
	"input",
	"dash",
	"tint",
}

func buildEntity(w *ecs.World, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(ctx.PrefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", ctx.PrefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", ctx.PrefabPath)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}
	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	if len(extra) > 0 {
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", ctx.PrefabPath, strings.Join(extra, ", "))
	}

	e := ecs.CreateEntity(w)
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			discard(w, e, ctx)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
	}
	return e, nil
}

func discard(w *ecs.World, e ecs.Entity, ctx *buildContext) {
	if ctx.collider != 0 && ctx.Physics != nil {
		ctx.Physics.Remove(ctx.collider)
	}
	ecs.DestroyEntity(w, e)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type nameSpec struct {
	Value string `yaml:"value"`
}

func addName(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[nameSpec](raw)
	if err != nil {
		return fmt.Errorf("decode name spec: %w", err)
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	pos := mgl64.Vec3(spec.Position)
	if ctx.Position != nil {
		pos = *ctx.Position
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Rotation: component.FacingYaw(mgl64.DegToRad(spec.Yaw)),
	})
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	if spec.HorizontalSpeed <= 0 {
		spec.HorizontalSpeed = ctx.Tuning.WalkSpeed
	}
	if spec.VerticalSpeedScale <= 0 {
		spec.VerticalSpeedScale = defaultVerticalSpeedScale
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		VerticalAccel:      ctx.Tuning.ClampAccel(spec.VerticalAccel),
		HorizontalSpeed:    spec.HorizontalSpeed,
		VerticalSpeedScale: spec.VerticalSpeedScale,
	})
}

type groundSensorSpec = prefabs.GroundSensorComponentSpec

func addGroundSensor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[groundSensorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ground sensor spec: %w", err)
	}
	if spec.ContactTolerance <= 0 {
		spec.ContactTolerance = defaultContactTolerance
	}
	if spec.ProbeHalfHeight <= 0 {
		spec.ProbeHalfHeight = defaultProbeHalfHeight
	}
	if spec.ProbeRadius <= 0 {
		spec.ProbeRadius = defaultProbeRadius
	}
	slope := defaultMaxSlopeAngle
	if spec.MaxSlopeAngle != nil {
		slope = *spec.MaxSlopeAngle
	}

	mode := component.ProbeMode(strings.ToLower(spec.Mode))
	switch mode {
	case "":
		mode = component.ProbeShape
	case component.ProbeShape, component.ProbeRay:
	default:
		return fmt.Errorf("unknown probe mode %q", spec.Mode)
	}

	return ecs.Add(w, e, component.GroundSensorComponent.Kind(), &component.GroundSensor{
		ContactTolerance: spec.ContactTolerance,
		ProbeHalfHeight:  spec.ProbeHalfHeight,
		ProbeRadius:      spec.ProbeRadius,
		MaxSlopeAngle:    slope,
		Mode:             mode,
		Distance:         -1,
	})
}

type kinematicBodySpec = prefabs.KinematicBodyComponentSpec

func addKinematicBody(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	if ctx.Physics == nil {
		return ErrNoPhysics
	}
	spec, err := prefabs.DecodeComponentSpec[kinematicBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode kinematic body spec: %w", err)
	}
	body := physics.Box{HalfExtents: mgl64.Vec3(spec.HalfExtents)}
	if !positive(body.HalfExtents) {
		return fmt.Errorf("body %v: %w", body.HalfExtents, ErrInvalidExtent)
	}

	var move *physics.Box
	if spec.MoveShape != nil {
		move = &physics.Box{
			Offset:      mgl64.Vec3(spec.MoveShape.Offset),
			HalfExtents: mgl64.Vec3(spec.MoveShape.HalfExtents),
		}
		if !positive(move.HalfExtents) {
			return fmt.Errorf("move shape %v: %w", move.HalfExtents, ErrInvalidExtent)
		}
	}

	var pos mgl64.Vec3
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos = tr.Position
	}
	ctx.collider = ctx.Physics.AddKinematic(pos, body, move)

	return ecs.Add(w, e, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Collider:  ctx.collider,
		Body:      body,
		MoveShape: move,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type dashSpec = prefabs.DashComponentSpec

func addDash(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[dashSpec](raw)
	if err != nil {
		return fmt.Errorf("decode dash spec: %w", err)
	}
	duration := ctx.Tuning.DashDuration
	if spec.Duration != nil {
		duration = *spec.Duration
	}
	if duration < 0 {
		return fmt.Errorf("dash duration %v is negative", duration)
	}
	return ecs.Add(w, e, component.DashComponent.Kind(), &component.Dash{Duration: duration})
}

type tintSpec = prefabs.TintComponentSpec

func addTint(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tintSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tint spec: %w", err)
	}
	return ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: spec.Color.RGBA})
}

func positive(v mgl64.Vec3) bool {
	return v.X() > 0 && v.Y() > 0 && v.Z() > 0
}
