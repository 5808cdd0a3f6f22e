package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "hex", in: `"#ff8000"`, want: color.RGBA{R: 0xff, G: 0x80, A: 0xff}},
		{name: "hex with alpha", in: `"#10203040"`, want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "named", in: `orange`, want: color.RGBA{R: 0xff, G: 0xa5, A: 0xff}},
		{name: "named mixed case", in: `LightCyan`, want: color.RGBA{R: 0xe0, G: 0xff, B: 0xff, A: 0xff}},
		{name: "short hex", in: `"#fff"`, wantErr: true},
		{name: "bad digits", in: `"#gg0000"`, wantErr: true},
		{name: "not scalar", in: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.RGBA)
		})
	}
}

func TestLoadEmbeddedArena(t *testing.T) {
	arena, err := LoadArenaSpec("arena.yaml")
	require.NoError(t, err)

	assert.Equal(t, "arena", arena.Name)
	require.NotEmpty(t, arena.Boxes)
	assert.Equal(t, "floor", arena.Boxes[0].Name)
	assert.Equal(t, Vec3Spec{20, 0.5, 20}, arena.Boxes[0].HalfExtents)
	assert.NotEmpty(t, arena.Spawns)
}

func TestLoadAcceptsPrefixedName(t *testing.T) {
	a, err := Load("prefabs/script.yaml")
	require.NoError(t, err)
	b, err := Load("script.yaml")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadSpec[ArenaSpec]("missing.yaml")
	assert.Error(t, err)
}

func TestDecodeCharacterComponents(t *testing.T) {
	spec, err := LoadEntityBuildSpec("character.yaml")
	require.NoError(t, err)

	body, err := DecodeComponentSpec[KinematicBodyComponentSpec](spec.Components["kinematic_body"])
	require.NoError(t, err)
	assert.Equal(t, Vec3Spec{0.4, 1.4, 0.4}, body.HalfExtents)
	require.NotNil(t, body.MoveShape)
	assert.Equal(t, Vec3Spec{0, -1.2, 0}, body.MoveShape.Offset)

	sensor, err := DecodeComponentSpec[GroundSensorComponentSpec](spec.Components["ground_sensor"])
	require.NoError(t, err)
	assert.Equal(t, "shape", sensor.Mode)
	require.NotNil(t, sensor.MaxSlopeAngle)
	assert.Equal(t, 45.0, *sensor.MaxSlopeAngle)

	empty, err := DecodeComponentSpec[DashComponentSpec](nil)
	require.NoError(t, err)
	assert.Nil(t, empty.Duration)
}

func TestIsSpecFile(t *testing.T) {
	assert.True(t, isSpecFile("prefabs/tuning.yaml"))
	assert.True(t, isSpecFile("x.YML"))
	assert.False(t, isSpecFile("x.tengo"))
}
