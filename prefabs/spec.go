package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec is written as a three element sequence: [x, y, z].
type Vec3Spec [3]float64

// BoxSpec describes an axis-aligned box.
type BoxSpec struct {
	Name        string   `yaml:"name"`
	Center      Vec3Spec `yaml:"center"`
	Offset      Vec3Spec `yaml:"offset"`
	HalfExtents Vec3Spec `yaml:"half_extents"`
}

// ArenaSpec is static collision geometry plus spawn points.
type ArenaSpec struct {
	Name   string     `yaml:"name"`
	Boxes  []BoxSpec  `yaml:"boxes"`
	Spawns []Vec3Spec `yaml:"spawns"`
}

func LoadArenaSpec(filename string) (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](filename)
}

// ScriptStepSpec holds a set of keys for a number of ticks.
type ScriptStepSpec struct {
	Ticks int      `yaml:"ticks"`
	Keys  []string `yaml:"keys"`
	// Yaw, in degrees, turns the character before the step runs.
	Yaw *float64 `yaml:"yaw"`
}

// ScriptSpec drives a headless simulation.
type ScriptSpec struct {
	Name  string           `yaml:"name"`
	DT    float64          `yaml:"dt"`
	Steps []ScriptStepSpec `yaml:"steps"`
}

func LoadScriptSpec(filename string) (ScriptSpec, error) {
	return LoadSpec[ScriptSpec](filename)
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
