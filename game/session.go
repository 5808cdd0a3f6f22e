// Package game wires the collision world, the prefabs and the character
// systems into a session that advances one tick at a time.
package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/ecs/entity"
	"github.com/milk9111/strider/ecs/system"
	"github.com/milk9111/strider/input"
	"github.com/milk9111/strider/physics"
	"github.com/milk9111/strider/tuning"
	"github.com/rs/zerolog/log"
)

var ErrNoPlayer = errors.New("game: no player character")

// Options configures a Session. Zero values pick the shipped prefabs.
type Options struct {
	Tuning   tuning.Source
	Bindings *input.Bindings
	Keys     input.KeySource

	ArenaPrefab     string
	CharacterPrefab string
	// Spawn overrides the arena's first spawn point.
	Spawn *mgl64.Vec3
	// Offset is the mover skin width; zero keeps physics.DefaultOffset.
	Offset float64
}

// Session owns one simulated world with a single player character.
type Session struct {
	World   *ecs.World
	Physics *physics.World
	Arena   entity.Arena

	sched  *ecs.Scheduler
	input  *system.InputSystem
	mapper *input.Mapper
	tuning tuning.Source
	player ecs.Entity
}

func NewSession(opts Options) (*Session, error) {
	src := opts.Tuning
	if src == nil {
		src = tuning.NewStore(tuning.Default())
	}
	bindings := input.DefaultBindings()
	if opts.Bindings != nil {
		bindings = *opts.Bindings
	}
	keys := opts.Keys
	if keys == nil {
		keys = input.NewKeySet()
	}

	var physOpts []physics.Option
	if opts.Offset > 0 {
		physOpts = append(physOpts, physics.WithOffset(opts.Offset))
	}

	s := &Session{
		World:   ecs.NewWorld(),
		Physics: physics.NewWorld(physOpts...),
		tuning:  src,
		mapper:  input.NewMapper(bindings),
	}

	arena, err := entity.BuildArena(s.World, s.Physics, opts.ArenaPrefab)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s.Arena = arena

	spawn := opts.Spawn
	if spawn == nil && len(arena.Spawns) > 0 {
		spawn = &arena.Spawns[0]
	}
	player, err := entity.SpawnCharacter(s.World, s.Physics, opts.CharacterPrefab, src.Get(), spawn)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if !ecs.Has(s.World, player, component.PlayerTagComponent.Kind()) {
		return nil, fmt.Errorf("%w: %s has no player_tag", ErrNoPlayer, opts.CharacterPrefab)
	}
	s.player = player

	s.input = system.NewInputSystem(s.mapper, keys)
	s.sched, err = newScheduler(s.Physics, s.input, src)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("arena", arena.Name).Int("colliders", s.Physics.Len()).Stringer("player", player).Msg("session ready")
	return s, nil
}

// newScheduler registers the character pipeline. Sensing reads last tick's
// resolved position; nothing moves until the resolve phase.
func newScheduler(pw *physics.World, in *system.InputSystem, src tuning.Source) (*ecs.Scheduler, error) {
	sched := ecs.NewScheduler()
	steps := []struct {
		phase  ecs.Phase
		system ecs.System
	}{
		{ecs.PhaseSense, system.NewGroundSensorSystem(pw)},
		{ecs.PhaseInput, system.NewDashSystem()},
		{ecs.PhaseInput, in},
		{ecs.PhaseInput, system.NewPlayerControllerSystem(src)},
		{ecs.PhaseMotion, system.NewHorizontalMotionSystem(src)},
		{ecs.PhaseMotion, system.NewVerticalMotionSystem(src)},
		{ecs.PhaseApply, system.NewKinematicDriverSystem(pw)},
		{ecs.PhaseResolve, system.NewPhysicsSystem(pw)},
		{ecs.PhasePresent, system.NewTintSystem()},
	}
	for _, st := range steps {
		if err := sched.Add(st.phase, st.system); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	return sched, nil
}

// Tick advances the session by dt seconds and returns the events the tick
// produced.
func (s *Session) Tick(dt float64) []ecs.Event {
	s.sched.Tick(s.World, dt)
	return s.World.Events().Drain()
}

func (s *Session) Player() ecs.Entity {
	return s.player
}

// SetKeys swaps the key source for later ticks.
func (s *Session) SetKeys(keys input.KeySource) {
	s.input.SetKeys(keys)
}

// Rebind swaps the key bindings for later ticks.
func (s *Session) Rebind(b input.Bindings) {
	s.mapper.Rebind(b)
}

// SetYaw turns the player to face yaw radians about +Y.
func (s *Session) SetYaw(yaw float64) {
	if tr, ok := ecs.Get(s.World, s.player, component.TransformComponent.Kind()); ok {
		tr.Rotation = component.FacingYaw(yaw)
	}
}

// Turn adds delta radians to the player's yaw.
func (s *Session) Turn(delta float64) {
	if tr, ok := ecs.Get(s.World, s.player, component.TransformComponent.Kind()); ok {
		tr.Rotation = component.FacingYaw(tr.Yaw() + delta)
	}
}
