package render

import (
	"math"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// minDepth keeps the perspective divide away from zero for points at or
// above the eye.
const minDepth = 1.0

// view projects world points onto the logical canvas. The eye hangs above
// the plane looking straight down; a point's scale shrinks with its depth
// below the eye.
type view struct {
	center physics.Vec3 // World point under the eye
	eyeZ   float64
	scale  float64 // Logical units per world unit at the reference depth
	width  float64
	height float64
}

// newView places the eye for a snapshot. Third person pans with the camera
// x and zooms with its height; first person follows the player.
func newView(s *loop.Snapshot, width, height float64) view {
	base := math.Min(width, height) / (2 * config.GridLength)
	v := view{width: width, height: height, scale: base}

	if s.FirstPerson {
		v.center = physics.Vec3{X: s.Player.Pos.X, Y: s.Player.Pos.Y}
		v.eyeZ = s.Player.Pos.Z + config.CameraStartZ/config.FirstPersonZoom
	} else {
		v.center = physics.Vec3{X: s.Camera.X}
		v.eyeZ = s.Camera.Z
	}
	return v
}

// depthScale is the projection factor at height z.
func (v view) depthScale(z float64) float64 {
	return v.scale * config.CameraStartZ / math.Max(minDepth, v.eyeZ-z)
}

// project maps p to logical canvas coordinates. Screen y grows downward.
func (v view) project(p physics.Vec3) draw.Point {
	k := v.depthScale(p.Z)
	return draw.Point{
		X: v.width/2 + (p.X-v.center.X)*k,
		Y: v.height/2 - (p.Y-v.center.Y)*k,
	}
}

// size maps a world length at height z to logical units.
func (v view) size(length, z float64) float64 {
	return length * v.depthScale(z)
}

// visible reports whether a projected point with logical radius r touches
// the canvas.
func (v view) visible(p draw.Point, r float64) bool {
	return p.X+r >= 0 && p.X-r <= v.width && p.Y+r >= 0 && p.Y-r <= v.height
}

// inFront reports whether z lies below the eye.
func (v view) inFront(z float64) bool {
	return v.eyeZ-z > minDepth
}
