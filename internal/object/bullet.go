package object

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Bullet is a shot fired by the player or the helper.
type Bullet struct {
	Pos       physics.Vec3
	Dir       physics.Vec3
	Helper    bool // Fired by the helper; misses are not counted
	destroyed bool
}

func NewBullet(pos, dir physics.Vec3, helper bool) *Bullet {
	return &Bullet{Pos: pos, Dir: dir, Helper: helper}
}

// Speed is the per-tick distance this bullet travels.
func (b *Bullet) Speed() float64 {
	if b.Helper {
		return config.HelperBulletSpeed
	}
	return config.PlayerBulletSpeed
}

// Move advances the bullet by one tick scaled by scale.
func (b *Bullet) Move(scale float64) {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed() * scale))
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// EnemyBullet is a shot fired by the enemy.
type EnemyBullet struct {
	Pos       physics.Vec3
	Dir       physics.Vec3
	destroyed bool
}

func NewEnemyBullet(pos, dir physics.Vec3) *EnemyBullet {
	return &EnemyBullet{Pos: pos, Dir: dir}
}

// RandomFireDirection picks a heading anywhere around the enemy, tilted at
// most EnemyFireElevation degrees off the plane.
func RandomFireDirection(rng *physics.Rand) physics.Vec3 {
	heading := rng.Uniform(0, 360)
	elevation := rng.Uniform(-config.EnemyFireElevation, config.EnemyFireElevation)
	return physics.FromAngles(heading, elevation)
}

// Advance moves the bullet by speed and returns its previous position and
// the displacement, so the caller can sample the swept path.
func (b *EnemyBullet) Advance(speed float64) (from, delta physics.Vec3) {
	from = b.Pos
	delta = b.Dir.Scale(speed)
	b.Pos = b.Pos.Add(delta)
	return from, delta
}

// MarkDestroyed marks the bullet for removal.
func (b *EnemyBullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *EnemyBullet) IsDestroyed() bool {
	return b.destroyed
}
