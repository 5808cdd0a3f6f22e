package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	// Yaw in degrees about +Y; zero faces -Z.
	Yaw float64 `yaml:"yaw"`
}

// CharacterComponentSpec fields left at zero fall back to the tuning.
type CharacterComponentSpec struct {
	HorizontalSpeed    float64 `yaml:"horizontal_speed"`
	VerticalSpeedScale float64 `yaml:"vertical_speed_scale"`
	VerticalAccel      float64 `yaml:"vertical_accel"`
}

type GroundSensorComponentSpec struct {
	ContactTolerance float64  `yaml:"contact_tolerance"`
	ProbeHalfHeight  float64  `yaml:"probe_half_height"`
	ProbeRadius      float64  `yaml:"probe_radius"`
	MaxSlopeAngle    *float64 `yaml:"max_slope_angle"`
	Mode             string   `yaml:"mode"`
}

type KinematicBodyComponentSpec struct {
	HalfExtents Vec3Spec `yaml:"half_extents"`
	MoveShape   *BoxSpec `yaml:"move_shape"`
}

type DashComponentSpec struct {
	// Duration overrides the tuning's dash_duration when set.
	Duration *float64 `yaml:"duration"`
}

type TintComponentSpec struct {
	Color YAMLColor `yaml:"color"`
}
