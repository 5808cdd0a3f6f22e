package tuning

import "fmt"

// Knob is one tuning field a debug panel can step up and down.
type Knob struct {
	Name  string
	Step  float64
	field func(*Tuning) *float64
}

// Knobs lists the fields that are safe to change while the simulation runs.
func Knobs() []Knob {
	return []Knob{
		{Name: "gravity", Step: 0.5, field: func(t *Tuning) *float64 { return &t.Gravity }},
		{Name: "jump_impulse", Step: 5, field: func(t *Tuning) *float64 { return &t.JumpImpulse }},
		{Name: "ground_damping", Step: 0.2, field: func(t *Tuning) *float64 { return &t.GroundDamping }},
		{Name: "vertical_scale_factor", Step: 0.05, field: func(t *Tuning) *float64 { return &t.VerticalScaleFactor }},
		{Name: "walk_speed", Step: 1, field: func(t *Tuning) *float64 { return &t.WalkSpeed }},
		{Name: "dash_speed", Step: 1, field: func(t *Tuning) *float64 { return &t.DashSpeed }},
		{Name: "dash_duration", Step: 0.1, field: func(t *Tuning) *float64 { return &t.DashDuration }},
	}
}

func (k Knob) Value(t Tuning) float64 {
	if k.field == nil {
		return 0
	}
	return *k.field(&t)
}

func (k Knob) String() string {
	return k.Name
}

// Adjust moves k by steps and installs the result. A change that would
// break validation is rejected and the store keeps its current tuning.
func (s *Store) Adjust(k Knob, steps int) (Tuning, error) {
	if k.field == nil {
		return s.Get(), fmt.Errorf("%w: unknown knob %q", ErrInvalidTuning, k.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	*k.field(&next) += float64(steps) * k.Step
	if err := next.Validate(); err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}
