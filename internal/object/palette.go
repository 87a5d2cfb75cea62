package object

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/ufostrike/internal/physics"
)

// enemyPalette holds the hull color of each evolution stage.
var enemyPalette = []colorful.Color{
	{R: 0.5, G: 0.5, B: 0.5},
	{R: 0.7, G: 0.2, B: 0.2},
	{R: 0.2, G: 0.7, B: 0.2},
	{R: 0.2, G: 0.2, B: 0.8},
	{R: 0.8, G: 0.2, B: 0.8},
}

// EnemyColor returns the hull color for an evolution stage. Stages past the
// end of the palette reuse its last color.
func EnemyColor(evolution int) colorful.Color {
	evolution = max(0, min(evolution, len(enemyPalette)-1))
	return enemyPalette[evolution]
}

// RandomBulletColor picks a warm shot color.
func RandomBulletColor(rng *physics.Rand) colorful.Color {
	return colorful.Color{
		R: rng.Uniform(0.5, 1.0),
		G: rng.Uniform(0.2, 0.8),
		B: rng.Uniform(0.2, 0.8),
	}
}

// AuroraColors returns n fully saturated colors of random hue.
func AuroraColors(rng *physics.Rand, n int) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range colors {
		colors[i] = colorful.Hsv(rng.Uniform(0, 360), 1, 1)
	}
	return colors
}

// Dim scales a color's brightness by f, for fading effects.
func Dim(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}
