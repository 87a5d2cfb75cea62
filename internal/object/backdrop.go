package object

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/ufostrike/internal/physics"
)

// Star is a distant twinkling point below the play plane.
type Star struct {
	Pos        physics.Vec3
	Brightness float64
	BlinkRate  float64
}

// Planet is a decorative body below the play plane.
type Planet struct {
	Pos           physics.Vec3
	Size          float64
	Color         colorful.Color
	Rings         bool
	RingColor     colorful.Color
	Rotation      float64 // Degrees
	RotationSpeed float64 // Degrees per tick
}

// NewStars scatters n stars far below the plane.
func NewStars(rng *physics.Rand, n int) []Star {
	area := physics.Area{MinX: -2000, MaxX: 2000, MinY: -2000, MaxY: 2000, MinZ: -800, MaxZ: -200}
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Pos:        rng.PointIn(area),
			Brightness: rng.Uniform(0.5, 1.0),
			BlinkRate:  rng.Uniform(0.5, 2.0),
		}
	}
	return stars
}

// Twinkle drifts the blink rate slowly so stars fall out of step.
func (s *Star) Twinkle(rng *physics.Rand) {
	s.BlinkRate = s.BlinkRate*0.999 + rng.Uniform(0.45, 2.1)*0.001
}

// NewPlanets scatters n planets below the plane.
func NewPlanets(rng *physics.Rand, n int) []Planet {
	area := physics.Area{MinX: -1500, MaxX: 1500, MinY: -1500, MaxY: 1500, MinZ: -700, MaxZ: -300}
	planets := make([]Planet, n)
	for i := range planets {
		p := Planet{
			Pos:           rng.PointIn(area),
			Size:          rng.Uniform(20, 80),
			Color:         randomColor(rng, 0.2, 0.8),
			Rings:         rng.Float64() > 0.7,
			Rotation:      rng.Uniform(0, 360),
			RotationSpeed: rng.Uniform(0.01, 0.05),
		}
		if p.Rings {
			p.RingColor = randomColor(rng, 0.2, 0.9)
		}
		if rng.Chance(0.5) {
			p.RotationSpeed = -p.RotationSpeed
		}
		planets[i] = p
	}
	return planets
}

// Spin turns the planet by one tick scaled by scale.
func (p *Planet) Spin(scale float64) {
	p.Rotation = physics.WrapDegrees(p.Rotation + p.RotationSpeed*scale)
}

func randomColor(rng *physics.Rand, lo, hi float64) colorful.Color {
	return colorful.Color{R: rng.Uniform(lo, hi), G: rng.Uniform(lo, hi), B: rng.Uniform(lo, hi)}
}
