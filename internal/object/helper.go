package object

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Helper is the escort craft that flies beside the player once unlocked
// and shoots at the nearest asteroid.
type Helper struct {
	Active     bool
	Offset     physics.Vec3
	TargetID   uint64 // Asteroid ID, or InvalidID
	LastShotAt float64
	Interval   float64
}

func NewHelper() *Helper {
	return &Helper{
		Offset:     physics.Vec3{X: config.HelperOffsetX},
		TargetID:   InvalidID,
		LastShotAt: Never,
		Interval:   config.HelperShotSeconds,
	}
}

// Position returns where the helper flies relative to the player.
func (h *Helper) Position(player physics.Vec3) physics.Vec3 {
	return player.Add(h.Offset)
}

// Ready reports whether the shot interval has elapsed at now.
func (h *Helper) Ready(now float64) bool {
	return now-h.LastShotAt > h.Interval
}
