package ecs

import (
	"errors"
	"fmt"
	"math"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Phase is a pipeline stage. Phases always run in declaration order, so a
// system in PhaseSense finishes before any PhaseInput system starts.
type Phase int

const (
	PhaseSense Phase = iota
	PhaseInput
	PhaseMotion
	PhaseApply
	PhaseResolve
	PhasePresent
	phaseCount
)

var ErrInvalidPhase = errors.New("ecs: invalid phase")

var phaseNames = [phaseCount]string{"sense", "input", "motion", "apply", "resolve", "present"}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Scheduler runs systems phase by phase.
type Scheduler struct {
	phases [phaseCount][]System
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends a system to a phase. Systems inside a phase keep insertion
// order.
func (s *Scheduler) Add(phase Phase, system System) error {
	if phase < 0 || phase >= phaseCount {
		return fmt.Errorf("scheduler: add to %s: %w", phase, ErrInvalidPhase)
	}
	if system == nil {
		return nil
	}
	s.phases[phase] = append(s.phases[phase], system)
	return nil
}

// Tick runs one simulation step with elapsed time dt. Events from the
// previous tick are dropped first; non-finite or negative dt runs as zero.
func (s *Scheduler) Tick(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	w.events.flush()
	w.delta = dt
	w.tick++
	for _, systems := range s.phases {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

// Systems returns the systems registered for phase.
func (s *Scheduler) Systems(phase Phase) []System {
	if s == nil || phase < 0 || phase >= phaseCount {
		return nil
	}
	systems := make([]System, 0, len(s.phases[phase]))
	return append(systems, s.phases[phase]...)
}
