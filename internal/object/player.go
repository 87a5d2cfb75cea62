package object

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// DamageTier selects the hull the renderer draws for the player.
type DamageTier int

const (
	HullHealthy DamageTier = iota
	HullDamaged
	HullCritical
)

// Player is the ship the user flies.
type Player struct {
	Pos physics.Vec3
	Dir physics.Vec3 // Unit firing direction

	Lives         int
	MissedBullets int
	BulletCount   int     // Bullets per volley
	FireRate      float64 // Volleys per second

	Shield        bool
	LastShieldHit float64
	LastShotAt    float64

	Flicker      bool // Set when a life gift is collected
	FlickerStart float64
	LastHitAt    float64
}

// NewPlayer returns a ship at its starting position with full lives.
func NewPlayer() *Player {
	return &Player{
		Pos:           physics.Vec3{Z: config.PlayerStartZ},
		Dir:           physics.Vec3{Y: 1},
		Lives:         config.InitialLives,
		BulletCount:   1,
		FireRate:      config.InitialFireRate,
		LastShieldHit: Never,
		LastShotAt:    Never,
		LastHitAt:     Never,
	}
}

// Tier maps remaining lives onto a hull appearance.
func (p *Player) Tier() DamageTier {
	switch {
	case p.Lives > config.DamageTierHealthy:
		return HullHealthy
	case p.Lives > config.DamageTierDamaged:
		return HullDamaged
	default:
		return HullCritical
	}
}

// CanFire reports whether the fire cooldown has elapsed at now.
func (p *Player) CanFire(now float64) bool {
	return now-p.LastShotAt > 1/p.FireRate
}

// Volley returns the bullets of one shot. A single bullet leaves along Dir;
// more are fanned symmetrically around it.
func (p *Player) Volley() []*Bullet {
	muzzle := p.Pos.Add(physics.Vec3{Y: config.MuzzleOffsetY})
	if p.BulletCount <= 1 {
		return []*Bullet{NewBullet(muzzle, p.Dir, false)}
	}

	start := -config.FanSpreadDegrees * float64(p.BulletCount-1) / 2
	bullets := make([]*Bullet, 0, p.BulletCount)
	for i := range p.BulletCount {
		dir := physics.RotateZ(p.Dir, start+float64(i)*config.FanSpreadDegrees).Normalize()
		bullets = append(bullets, NewBullet(muzzle, dir, false))
	}
	return bullets
}

// Nudge moves the ship within the plane.
func (p *Player) Nudge(dx, dy float64) {
	p.Pos.X += dx
	p.Pos.Y += dy
}

// Confine keeps the ship inside the play area.
func (p *Player) Confine() {
	limit := config.GridLength - config.PlayerBoundaryMargin
	p.Pos.X = physics.Clamp(p.Pos.X, -limit, limit)
	p.Pos.Y = physics.Clamp(p.Pos.Y, -limit, limit)
}
