package utils

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
}

func TestLerpAndApproxEqual(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.True(t, ApproxEqual(0.1+0.2, 0.3, 1e-12))
	assert.False(t, ApproxEqual(1, 1.1, 0.01))
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, Shade(c, 0.5))
	assert.Equal(t, c, Shade(c, 2))
	assert.Equal(t, color.RGBA{A: 255}, Shade(c, -1))
}
