// Package physics provides vector math, collision tests and the seeded
// random source used by the simulation.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec3) float64 {
	return b.Sub(a).LenSquared()
}

// Within reports whether two points are strictly closer than radius.
func Within(a, b Vec3, radius float64) bool {
	return DistanceSquared(a, b) < radius*radius
}

// SpheresOverlap checks if two spheres overlap.
func SpheresOverlap(a Vec3, ra float64, b Vec3, rb float64) bool {
	return Within(a, b, ra+rb)
}

// OutsidePlane reports whether p lies beyond limit on the x or y axis.
func OutsidePlane(p Vec3, limit float64) bool {
	return math.Abs(p.X) > limit || math.Abs(p.Y) > limit
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// WrapDegrees maps an angle to [0, 360).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
