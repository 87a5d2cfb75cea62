package object

import "github.com/lucasb-eyer/go-colorful"

// Aurora is the colored sky flash shown after the enemy is beaten.
type Aurora struct {
	Active    bool
	StartedAt float64
	Colors    []colorful.Color
}

// Trigger starts the flash at now with the given colors.
func (a *Aurora) Trigger(now float64, colors []colorful.Color) {
	a.Active = true
	a.StartedAt = now
	a.Colors = colors
}

// Expire switches the flash off once it has lasted longer than d.
func (a *Aurora) Expire(now, d float64) {
	if a.Active && now-a.StartedAt > d {
		a.Active = false
	}
}
