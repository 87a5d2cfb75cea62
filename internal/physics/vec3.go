package physics

import "math"

// Vec3 is a point or direction in world space. Z points up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LenSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp returns the point t of the way from v to o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return a.Lerp(b, 0.5)
}

// RotateZ rotates v around the Z axis by deg degrees.
func RotateZ(v Vec3, deg float64) Vec3 {
	sin, cos := math.Sincos(Radians(deg))
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// FromAngles builds a unit direction from a heading around Z and an
// elevation above the XY plane, both in degrees.
func FromAngles(heading, elevation float64) Vec3 {
	hs, hc := math.Sincos(Radians(heading))
	es, ec := math.Sincos(Radians(elevation))
	return Vec3{X: hc * ec, Y: hs * ec, Z: es}
}
