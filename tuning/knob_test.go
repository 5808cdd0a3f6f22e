package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knob(t *testing.T, name string) Knob {
	t.Helper()
	for _, k := range Knobs() {
		if k.Name == name {
			return k
		}
	}
	require.Failf(t, "missing knob", "%s", name)
	return Knob{}
}

func TestKnobsReadTheirField(t *testing.T) {
	tu := Default()
	assert.Equal(t, 9.8, knob(t, "gravity").Value(tu))
	assert.Equal(t, -80.0, knob(t, "jump_impulse").Value(tu))
	assert.Equal(t, 0.4, knob(t, "dash_duration").Value(tu))
	assert.Equal(t, 0.0, Knob{Name: "bogus"}.Value(tu))
}

func TestStoreAdjust(t *testing.T) {
	tests := []struct {
		name    string
		knob    string
		steps   int
		wantErr bool
		want    float64
	}{
		{name: "walk speed up", knob: "walk_speed", steps: 2, want: 10},
		{name: "dash speed down", knob: "dash_speed", steps: -4, want: 12},
		{name: "gravity below zero", knob: "gravity", steps: -20, wantErr: true, want: 9.8},
		{name: "jump pushing down", knob: "jump_impulse", steps: 17, wantErr: true, want: -80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(Default())
			k := knob(t, tt.knob)

			got, err := s.Adjust(k, tt.steps)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTuning)
				assert.Equal(t, Default(), s.Get())
			} else {
				require.NoError(t, err)
			}
			assert.InDelta(t, tt.want, k.Value(got), 1e-9)
			assert.InDelta(t, tt.want, k.Value(s.Get()), 1e-9)
		})
	}
}

func TestStoreAdjustUnknownKnob(t *testing.T) {
	s := NewStore(Default())
	_, err := s.Adjust(Knob{Name: "bogus"}, 1)
	assert.ErrorIs(t, err, ErrInvalidTuning)
	assert.Equal(t, Default(), s.Get())
}
