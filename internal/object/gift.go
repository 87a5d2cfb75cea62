package object

import "github.com/tomz197/ufostrike/internal/physics"

// LifeGift is dropped where the enemy is defeated and restores one life.
type LifeGift struct {
	Pos       physics.Vec3
	Age       float64
	destroyed bool
}

func NewLifeGift(pos physics.Vec3) *LifeGift {
	return &LifeGift{Pos: pos}
}

// MarkDestroyed marks the gift as collected.
func (g *LifeGift) MarkDestroyed() {
	g.destroyed = true
}

// IsDestroyed returns true if the gift was collected.
func (g *LifeGift) IsDestroyed() bool {
	return g.destroyed
}
