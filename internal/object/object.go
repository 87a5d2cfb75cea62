// Package object defines the entities of the play field and the motion
// each of them performs on its own.
package object

import "math"

// InvalidID marks an entity reference that points at nothing.
const InvalidID uint64 = 0

// Never is a timestamp older than any simulated clock value, so cooldowns
// measured from it have always elapsed.
var Never = math.Inf(-1)

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Compact drops destroyed entries in place and returns the shortened slice.
// Marking is idempotent, so an entity hit twice in one pass is removed once.
func Compact[T Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// ShouldRenderBlink returns true if an object with remaining protection/invincibility
// time should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0 (no protection).
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
