package object

import "github.com/tomz197/ufostrike/internal/physics"

// Explosion is a short expanding burst.
type Explosion struct {
	Pos      physics.Vec3
	Size     float64
	Age      float64 // Normalized progress in [0, 1)
	Duration float64 // Seconds
	done     bool
}

func NewExplosion(pos physics.Vec3, size, duration float64) *Explosion {
	return &Explosion{Pos: pos, Size: size, Duration: duration}
}

// Advance ages the explosion by dt seconds. A non-positive duration ages a
// full unit per second.
func (e *Explosion) Advance(dt float64) {
	if e.Duration > 0 {
		e.Age += dt / e.Duration
	} else {
		e.Age += dt
	}
	if e.Age >= 1 {
		e.done = true
	}
}

// MarkDestroyed marks the explosion for removal.
func (e *Explosion) MarkDestroyed() {
	e.done = true
}

// IsDestroyed returns true once the explosion has played out.
func (e *Explosion) IsDestroyed() bool {
	return e.done
}
