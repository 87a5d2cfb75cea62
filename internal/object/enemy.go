package object

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Enemy is the teleporting UFO. It grows tougher every time it is beaten.
type Enemy struct {
	Pos    physics.Vec3
	Target physics.Vec3

	Lives     int
	MaxLives  int
	Evolution int
	Style     int // Shooting style in [0, EnemyShootingStyles)

	Color       colorful.Color
	BulletColor colorful.Color

	Visible    bool
	TeleportAt float64 // Clock value of the last visibility toggle

	Size  float64
	Speed float64
}

// NewEnemy places a first-generation enemy at pos heading for target.
func NewEnemy(pos, target physics.Vec3) *Enemy {
	return &Enemy{
		Pos:         pos,
		Target:      target,
		Lives:       config.EnemyInitialLives,
		MaxLives:    config.EnemyInitialLives,
		Color:       EnemyColor(0),
		BulletColor: colorful.Color{R: 1, G: 0.3, B: 0.3},
		Visible:     true,
		Size:        config.EnemySize,
		Speed:       config.EnemySpeed,
	}
}

// HitRadius is the distance inside which a player bullet strikes.
func (e *Enemy) HitRadius() float64 {
	return config.EnemyHitRadiusPerSize * e.Size
}

// BodyRadius is the distance inside which the enemy rams the player.
func (e *Enemy) BodyRadius() float64 {
	return config.EnemyBodyRadius + config.EnemyBodyRadiusPerSize*e.Size
}

// BulletSpeed is the per-tick speed of this enemy's shots.
func (e *Enemy) BulletSpeed() float64 {
	if e.Style >= config.EnemySlowStyleFrom {
		return config.EnemySlowBulletSpeed
	}
	return config.EnemyBulletSpeed
}

// Damage is the lost share of lives in [0, 1].
func (e *Enemy) Damage() float64 {
	if e.MaxLives <= 0 {
		return 0
	}
	return 1 - float64(e.Lives)/float64(e.MaxLives)
}

// Steer moves the enemy toward its target by Speed*scale. It reports true
// when the target is reached and a new one is needed.
func (e *Enemy) Steer(scale float64) (arrived bool) {
	d := e.Target.Sub(e.Pos)
	dist := d.Len()
	if dist < config.EnemyArriveDistance {
		return true
	}
	e.Pos = e.Pos.Add(d.Scale(e.Speed * scale / dist))
	return false
}

// Evolve advances the enemy one generation after a defeat.
func (e *Enemy) Evolve(rng *physics.Rand) {
	e.MaxLives = min(config.EnemyMaxLivesCap, e.MaxLives+1)
	e.Lives = e.MaxLives
	e.Evolution = min(config.EnemyMaxEvolution, e.Evolution+1)
	e.Color = EnemyColor(e.Evolution)
	e.Style = rng.Intn(config.EnemyShootingStyles)
	e.BulletColor = RandomBulletColor(rng)
}
