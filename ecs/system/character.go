package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/rs/zerolog/log"
)

// MotionEventType is the Event.Type of every MotionEvent pushed by the
// character systems.
const MotionEventType = "motion"

// characterView bundles the components the character systems work on.
// Optional components are nil when absent.
type characterView struct {
	entity    ecs.Entity
	character *component.Character
	transform *component.Transform
	sensor    *component.GroundSensor
	body      *component.KinematicBody
	input     *component.Input
	dash      *component.Dash
}

// characters gathers every entity with a Character before any system
// mutates one, so a system never observes a half-updated set.
func characters(w *ecs.World) []characterView {
	if w == nil {
		return nil
	}
	entities := w.Query(component.CharacterComponent.Kind())
	if len(entities) == 0 {
		return nil
	}
	out := make([]characterView, 0, len(entities))
	for _, e := range entities {
		c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok {
			continue
		}
		v := characterView{entity: e, character: c}
		v.transform, _ = ecs.Get(w, e, component.TransformComponent.Kind())
		v.sensor, _ = ecs.Get(w, e, component.GroundSensorComponent.Kind())
		v.body, _ = ecs.Get(w, e, component.KinematicBodyComponent.Kind())
		v.input, _ = ecs.Get(w, e, component.InputComponent.Kind())
		v.dash, _ = ecs.Get(w, e, component.DashComponent.Kind())
		out = append(out, v)
	}
	return out
}

func pushMotion(w *ecs.World, e ecs.Entity, kind ecs.MotionEventKind) {
	log.Debug().Stringer("entity", e).Uint64("tick", w.Tick()).Str("event", string(kind)).Msg("motion")
	w.Events().Push(ecs.Event{
		Type: MotionEventType,
		Data: ecs.MotionEvent{Entity: e, Kind: kind, Tick: w.Tick()},
	})
}

// MotionEvents filters the motion events out of a drained queue.
func MotionEvents(events []ecs.Event) []ecs.MotionEvent {
	var out []ecs.MotionEvent
	for _, evt := range events {
		if evt.Type != MotionEventType {
			continue
		}
		if me, ok := evt.Data.(ecs.MotionEvent); ok {
			out = append(out, me)
		}
	}
	return out
}
