package input

import (
	"errors"
	"fmt"

	"github.com/milk9111/strider/prefabs"
)

var ErrEmptyScript = errors.New("input: script has no steps")

// Script replays recorded key state tick by tick. It is a KeySource whose
// held keys change on Advance.
type Script struct {
	name  string
	dt    float64
	steps []prefabs.ScriptStepSpec

	step    int
	left    int
	current KeySet
}

// NewScript validates spec. Steps with no ticks are dropped.
func NewScript(spec prefabs.ScriptSpec) (*Script, error) {
	steps := make([]prefabs.ScriptStepSpec, 0, len(spec.Steps))
	for i, st := range spec.Steps {
		if st.Ticks < 0 {
			return nil, fmt.Errorf("input: script %s step %d: negative ticks", spec.Name, i)
		}
		if st.Ticks > 0 {
			steps = append(steps, st)
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScript, spec.Name)
	}
	return &Script{name: spec.Name, dt: spec.DT, steps: steps, step: -1, current: KeySet{}}, nil
}

// LoadScript reads a script prefab by name.
func LoadScript(name string) (*Script, error) {
	spec, err := prefabs.LoadScriptSpec(name)
	if err != nil {
		return nil, err
	}
	return NewScript(spec)
}

func (s *Script) Name() string { return s.name }

// DT is the step the script was recorded at, zero when unspecified.
func (s *Script) DT() float64 { return s.dt }

// Len is the total number of ticks.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}

// Advance moves to the next tick. It returns the yaw in degrees when the
// tick starts a step that turns the character, and false once the script
// is exhausted.
func (s *Script) Advance() (yaw *float64, ok bool) {
	if s.left > 0 {
		s.left--
		return nil, true
	}
	if s.step+1 >= len(s.steps) {
		s.current = KeySet{}
		return nil, false
	}
	s.step++
	st := s.steps[s.step]
	s.left = st.Ticks - 1
	s.current = NewKeySet(st.Keys...)
	return st.Yaw, true
}

func (s *Script) Pressed(key string) bool {
	return s.current.Pressed(key)
}
