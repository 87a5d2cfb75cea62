package draw

import "math"

// RegularPolygon returns n points on a circle of radius r around c, starting
// at angle rot (radians). dst is reused when it has room.
func RegularPolygon(dst []Point, c Point, r float64, n int, rot float64) []Point {
	dst = dst[:0]
	for i := range n {
		a := rot + 2*math.Pi*float64(i)/float64(n)
		dst = append(dst, Point{X: c.X + math.Cos(a)*r, Y: c.Y + math.Sin(a)*r})
	}
	return dst
}

// IrregularPolygon is like RegularPolygon with one vertex per entry of
// radii, each scaling r for its vertex.
func IrregularPolygon(dst []Point, c Point, r float64, radii []float64, rot float64) []Point {
	dst = dst[:0]
	n := len(radii)
	for i := range n {
		a := rot + 2*math.Pi*float64(i)/float64(n)
		ri := r * radii[i]
		dst = append(dst, Point{X: c.X + math.Cos(a)*ri, Y: c.Y + math.Sin(a)*ri})
	}
	return dst
}

// Transform rotates points by angle (radians) around the origin, scales
// them by s and moves them to c. Used for ship outlines defined in model space.
func Transform(dst, model []Point, c Point, angle, s float64) []Point {
	dst = dst[:0]
	sin, cos := math.Sincos(angle)
	for _, p := range model {
		dst = append(dst, Point{
			X: c.X + (p.X*cos-p.Y*sin)*s,
			Y: c.Y + (p.X*sin+p.Y*cos)*s,
		})
	}
	return dst
}
