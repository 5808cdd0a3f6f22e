package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0, 1, 2))
	assert.Equal(t, 2.0, Clamp(5, 1, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 1, 2))
	assert.Equal(t, 1.0, Clamp(math.NaN(), 1, 2))
	assert.Equal(t, 2.0, Clamp(math.Inf(1), 1, 2))
	assert.Equal(t, 1.0, Clamp(math.Inf(-1), 1, 2))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.True(t, ApproxEqual(0.3, 0.1+0.2, Epsilon))
}
