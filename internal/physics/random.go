package physics

import "math/rand"

// maxPlacementAttempts bounds rejection sampling in PointAwayFrom.
const maxPlacementAttempts = 64

// Area is an axis-aligned sampling volume.
type Area struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Rand is the simulation's random source. A World owns exactly one so a
// fixed seed reproduces a whole run.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a source seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Intn returns a value in [0, n).
func (r *Rand) Intn(n int) int {
	return r.r.Intn(n)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// UniformVec3 returns a vector with each component in [lo, hi).
func (r *Rand) UniformVec3(lo, hi float64) Vec3 {
	return Vec3{r.Uniform(lo, hi), r.Uniform(lo, hi), r.Uniform(lo, hi)}
}

// PointIn returns a uniformly sampled point inside a.
func (r *Rand) PointIn(a Area) Vec3 {
	return Vec3{
		X: r.Uniform(a.MinX, a.MaxX),
		Y: r.Uniform(a.MinY, a.MaxY),
		Z: r.Uniform(a.MinZ, a.MaxZ),
	}
}

// PointAwayFrom samples a point inside a that is farther than minDist from
// avoid. If no such point turns up after a bounded number of attempts the
// last sample is returned.
func (r *Rand) PointAwayFrom(a Area, avoid Vec3, minDist float64) Vec3 {
	var p Vec3
	for range maxPlacementAttempts {
		p = r.PointIn(a)
		if !Within(p, avoid, minDist) {
			return p
		}
	}
	return p
}
