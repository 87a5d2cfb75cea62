// Package draw renders colored half-block graphics and text to ANSI terminals.
package draw

// Point is a position in logical canvas coordinates.
type Point struct {
	X, Y float64
}

// Half-block glyphs. Each terminal cell shows two vertically stacked
// sub-pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// gauge runs from empty to solid.
var gauge = [...]rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel picks the gauge glyph for a fill level in [0, 1]. Values
// outside the range are clamped.
func ShadeLevel(level float64) rune {
	level = max(0, min(1, level))
	return gauge[int(level*float64(len(gauge)-1))]
}

func abs(x int) int {
	return max(x, -x)
}
