package movement

import "math"

// DefaultSpeed is the character speed in units per second.
const DefaultSpeed = 60.0

// Vec3 is a velocity in controller space: +X right, +Y up.
type Vec3 struct {
	X, Y, Z float64
}

// Zero reports whether all components are zero.
func (v Vec3) Zero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Length returns the euclidean magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Angle returns the heading of d in radians. None maps to 0.
func Angle(d Direction) float64 {
	switch d {
	case Up:
		return math.Pi / 2
	case Left:
		return math.Pi
	case Down:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// Velocity maps a direction to a constant-speed vector. None is the zero vector.
func Velocity(d Direction, speed float64) Vec3 {
	if d == None {
		return Vec3{}
	}
	a := Angle(d)
	return Vec3{X: math.Cos(a) * speed, Y: math.Sin(a) * speed}
}
