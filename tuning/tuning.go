// Package tuning holds the controller constants shared by every character
// and a hot-reloadable store for them.
package tuning

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/strider/prefabs"
	"gopkg.in/yaml.v3"
)

// DiagonalPolicy decides how simultaneous axes combine.
type DiagonalPolicy string

const (
	// DiagonalClamp clamps the composed direction to unit length, so
	// diagonal movement is no faster than straight movement.
	DiagonalClamp DiagonalPolicy = "clamp"
	// DiagonalSum leaves the summed basis vectors unnormalised.
	DiagonalSum DiagonalPolicy = "sum"
)

var ErrInvalidTuning = errors.New("tuning: invalid")

// Tuning is one internally consistent constant set.
type Tuning struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`

	GroundDamping float64 `yaml:"ground_damping"`
	GroundMin     float64 `yaml:"ground_min"`
	GroundMax     float64 `yaml:"ground_max"`
	AccelMin      float64 `yaml:"accel_min"`
	AccelMax      float64 `yaml:"accel_max"`

	VerticalScaleFactor float64 `yaml:"vertical_scale_factor"`

	WalkSpeed    float64        `yaml:"walk_speed"`
	DashSpeed    float64        `yaml:"dash_speed"`
	DashDuration float64        `yaml:"dash_duration"`
	Diagonal     DiagonalPolicy `yaml:"diagonal"`
}

// Default returns the canonical constant set.
func Default() Tuning {
	return Tuning{
		Gravity:             9.8,
		JumpImpulse:         -80,
		GroundDamping:       2.2,
		GroundMin:           9.8,
		GroundMax:           20,
		AccelMin:            -500,
		AccelMax:            500,
		VerticalScaleFactor: 0.2,
		WalkSpeed:           8,
		DashSpeed:           16,
		DashDuration:        0.4,
		Diagonal:            DiagonalClamp,
	}
}

// ClampAccel bounds a vertical accel to the stable range.
func (t Tuning) ClampAccel(a float64) float64 {
	return clamp(a, t.AccelMin, t.AccelMax)
}

// ClampGround bounds a vertical accel to the grounded sub-range.
func (t Tuning) ClampGround(a float64) float64 {
	return clamp(a, t.GroundMin, t.GroundMax)
}

// Validate checks every invariant the integrator relies on.
func (t Tuning) Validate() error {
	fields := map[string]float64{
		"gravity":               t.Gravity,
		"jump_impulse":          t.JumpImpulse,
		"ground_damping":        t.GroundDamping,
		"ground_min":            t.GroundMin,
		"ground_max":            t.GroundMax,
		"accel_min":             t.AccelMin,
		"accel_max":             t.AccelMax,
		"vertical_scale_factor": t.VerticalScaleFactor,
		"walk_speed":            t.WalkSpeed,
		"dash_speed":            t.DashSpeed,
		"dash_duration":         t.DashDuration,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidTuning, name)
		}
	}

	switch {
	case t.Gravity < 0:
		return fmt.Errorf("%w: gravity %v is negative", ErrInvalidTuning, t.Gravity)
	case t.JumpImpulse > 0:
		return fmt.Errorf("%w: jump_impulse %v must push upward (<= 0)", ErrInvalidTuning, t.JumpImpulse)
	case t.GroundDamping < 0:
		return fmt.Errorf("%w: ground_damping %v is negative", ErrInvalidTuning, t.GroundDamping)
	case t.AccelMin >= t.AccelMax:
		return fmt.Errorf("%w: accel range [%v, %v] is empty", ErrInvalidTuning, t.AccelMin, t.AccelMax)
	case t.GroundMin > t.GroundMax:
		return fmt.Errorf("%w: ground range [%v, %v] is empty", ErrInvalidTuning, t.GroundMin, t.GroundMax)
	case t.GroundMin < t.AccelMin || t.GroundMax > t.AccelMax:
		return fmt.Errorf("%w: ground range [%v, %v] outside accel range", ErrInvalidTuning, t.GroundMin, t.GroundMax)
	case t.Gravity > t.AccelMax:
		return fmt.Errorf("%w: gravity %v above accel_max", ErrInvalidTuning, t.Gravity)
	case t.VerticalScaleFactor < 0:
		return fmt.Errorf("%w: vertical_scale_factor %v is negative", ErrInvalidTuning, t.VerticalScaleFactor)
	case t.WalkSpeed < 0 || t.DashSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidTuning)
	case t.DashDuration < 0:
		return fmt.Errorf("%w: dash_duration %v is negative", ErrInvalidTuning, t.DashDuration)
	}

	switch t.Diagonal {
	case DiagonalClamp, DiagonalSum:
	default:
		return fmt.Errorf("%w: unknown diagonal policy %q", ErrInvalidTuning, t.Diagonal)
	}
	return nil
}

// Parse decodes YAML over the defaults and validates the result, so a file
// only needs the fields it changes.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Load reads a tuning prefab by name.
func Load(name string) (Tuning, error) {
	data, err := prefabs.Load(name)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: load %s: %w", name, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %s: %w", name, err)
	}
	return t, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
