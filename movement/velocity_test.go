package movement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocity(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		angle float64
		want  Vec3
	}{
		{name: "none", dir: None, angle: 0, want: Vec3{}},
		{name: "right", dir: Right, angle: 0, want: Vec3{X: 60}},
		{name: "up", dir: Up, angle: math.Pi / 2, want: Vec3{Y: 60}},
		{name: "left", dir: Left, angle: math.Pi, want: Vec3{X: -60}},
		{name: "down", dir: Down, angle: 3 * math.Pi / 2, want: Vec3{Y: -60}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.angle, Angle(tc.dir), 1e-12)

			v := Velocity(tc.dir, DefaultSpeed)
			assert.InDelta(t, tc.want.X, v.X, 1e-9)
			assert.InDelta(t, tc.want.Y, v.Y, 1e-9)
			assert.Zero(t, v.Z)
		})
	}
}

func TestVelocity_Magnitude(t *testing.T) {
	assert.True(t, Velocity(None, DefaultSpeed).Zero())
	for _, d := range Directions {
		assert.InDelta(t, 60.0, Velocity(d, DefaultSpeed).Length(), 1e-9, d.String())
	}
}
