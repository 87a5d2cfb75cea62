package object

import (
	"math"

	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// AsteroidType selects one of the asteroid meshes.
type AsteroidType int

const (
	AsteroidRocky AsteroidType = iota
	AsteroidJagged
	AsteroidRound
)

// Asteroid is a drifting rock. Bullets wear it down until it shatters.
type Asteroid struct {
	ID            uint64
	Pos           physics.Vec3
	Velocity      physics.Vec3 // Per tick
	Rotation      physics.Vec3 // Degrees per axis, in [0, 360)
	RotationSpeed physics.Vec3
	Size          float64
	Type          AsteroidType
	Heat          float64 // Trail glow intensity in [0.5, 1]
	Trail         []TrailParticle
	destroyed     bool
}

// TrailParticle is one glowing ember behind an asteroid.
type TrailParticle struct {
	Pos      physics.Vec3
	Size     float64
	Age      float64
	Lifetime float64
	Heat     float64
}

// Fade is the remaining brightness in [0, 1].
func (p TrailParticle) Fade() float64 {
	return math.Max(0, 1-p.Age/p.Lifetime)
}

// NewAsteroid creates a freshly seeded asteroid at pos.
func NewAsteroid(rng *physics.Rand, pos physics.Vec3) *Asteroid {
	a := &Asteroid{
		Pos:  pos,
		Size: rng.Uniform(config.AsteroidMinSize, config.AsteroidMaxSize),
		Type: AsteroidType(rng.Intn(config.AsteroidTypes)),
		Heat: rng.Uniform(0.7, 1.0),
		Velocity: physics.Vec3{
			X: driftSpeed(rng),
			Y: driftSpeed(rng),
		},
	}
	a.randomizeSpin(rng)
	return a
}

// driftSpeed samples a per-axis speed, doubling sluggish ones.
func driftSpeed(rng *physics.Rand) float64 {
	v := rng.Uniform(-3, 3)
	if math.Abs(v) < 1 {
		v *= 2
	}
	return v
}

// Fragment creates a child of a shattered parent. The child flies a little
// faster than the parent and usually keeps its type.
func Fragment(rng *physics.Rand, parent *Asteroid, inheritChance float64) *Asteroid {
	offset := physics.Vec3{
		X: rng.Uniform(-config.ChildOffset, config.ChildOffset),
		Y: rng.Uniform(-config.ChildOffset, config.ChildOffset),
		Z: rng.Uniform(-config.ChildOffset, config.ChildOffset),
	}
	boost := func(v float64) float64 {
		return v * rng.Uniform(0.8, 1.2) * config.ChildSpeedBoost
	}

	typ := AsteroidType(rng.Intn(config.AsteroidTypes))
	if rng.Chance(inheritChance) {
		typ = parent.Type
	}

	a := &Asteroid{
		Pos:  parent.Pos.Add(offset),
		Size: rng.Uniform(config.ChildMinSize, config.ChildMaxSize),
		Type: typ,
		Heat: rng.Uniform(0.5, 1.0),
		Velocity: physics.Vec3{
			X: boost(parent.Velocity.X),
			Y: boost(parent.Velocity.Y),
			Z: boost(parent.Velocity.Z),
		},
	}
	a.randomizeSpin(rng)
	return a
}

func (a *Asteroid) randomizeSpin(rng *physics.Rand) {
	a.Rotation = rng.UniformVec3(0, 360)
	a.RotationSpeed = rng.UniformVec3(-2, 2)
}

// Move advances position and spin by one tick scaled by scale.
func (a *Asteroid) Move(scale float64) {
	a.Pos = a.Pos.Add(a.Velocity.Scale(scale))
	a.Rotation = physics.Vec3{
		X: physics.WrapDegrees(a.Rotation.X + a.RotationSpeed.X*scale),
		Y: physics.WrapDegrees(a.Rotation.Y + a.RotationSpeed.Y*scale),
		Z: physics.WrapDegrees(a.Rotation.Z + a.RotationSpeed.Z*scale),
	}
}

// MaxTrail is the number of embers this asteroid keeps.
func (a *Asteroid) MaxTrail() int {
	if a.Size > config.TrailLargeSize {
		return config.TrailCapLarge
	}
	return config.TrailCapSmall
}

// UpdateTrail may emit one ember, ages the rest and evicts the oldest
// beyond MaxTrail.
func (a *Asteroid) UpdateTrail(dt float64, rng *physics.Rand) {
	if rng.Chance(config.TrailSpawnChance) {
		spread := a.Size * 0.2
		a.Trail = append(a.Trail, TrailParticle{
			Pos: a.Pos.Add(physics.Vec3{
				X: rng.Uniform(-spread, spread),
				Y: rng.Uniform(-spread, spread),
				Z: rng.Uniform(-spread, spread),
			}),
			Size:     a.Size * 0.8 * rng.Uniform(0.5, 1.0),
			Lifetime: rng.Uniform(0.5, 1.5),
			Heat:     a.Heat,
		})
	}

	kept := a.Trail[:0]
	for _, p := range a.Trail {
		p.Age += dt
		if p.Age > p.Lifetime {
			continue
		}
		p.Size *= 1 - dt*config.TrailShrinkRate
		kept = append(kept, p)
	}
	a.Trail = kept

	if over := len(a.Trail) - a.MaxTrail(); over > 0 {
		a.Trail = append(a.Trail[:0], a.Trail[over:]...)
	}
}

// ClearTrail drops every ember, used when the asteroid jumps.
func (a *Asteroid) ClearTrail() {
	a.Trail = a.Trail[:0]
}

// Wrap moves an asteroid that crossed the edge of the play area to the
// opposite side and jitters its heading. It reports whether it wrapped.
func (a *Asteroid) Wrap(grid float64, rng *physics.Rand) bool {
	bound := grid - a.Size
	if math.Abs(a.Pos.X) <= bound && math.Abs(a.Pos.Y) <= bound {
		return false
	}

	switch {
	case a.Pos.X > bound:
		a.Pos.X = -bound + a.Size
	case a.Pos.X < -bound:
		a.Pos.X = bound - a.Size
	}
	switch {
	case a.Pos.Y > bound:
		a.Pos.Y = -bound + a.Size
	case a.Pos.Y < -bound:
		a.Pos.Y = bound - a.Size
	}

	a.ClearTrail()

	speed := math.Hypot(a.Velocity.X, a.Velocity.Y)
	heading := math.Atan2(a.Velocity.Y, a.Velocity.X) +
		physics.Radians(rng.Uniform(-config.WrapJitterDegrees, config.WrapJitterDegrees))
	a.Velocity.X = math.Cos(heading) * speed
	a.Velocity.Y = math.Sin(heading) * speed
	return true
}

// MarkDestroyed marks the asteroid for removal.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
