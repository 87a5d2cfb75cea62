package loop

import (
	"math"

	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// moveEnemy runs the teleport cycle and steers a visible enemy toward its
// target.
func (w *World) moveEnemy(scale float64) {
	e := w.Enemy
	if w.Clock-e.TeleportAt > config.EnemyTeleportSeconds {
		e.TeleportAt = w.Clock
		if e.Visible {
			e.Visible = false
		} else {
			e.Pos = w.sampleUpper()
			e.Target = w.sampleUpper()
			e.Visible = true
		}
	}
	if !e.Visible {
		return
	}

	if e.Steer(scale) {
		e.Target = w.sampleUpper()
		return
	}
	if floor := config.UpperAreaFloorFraction * config.GridLength; e.Pos.Y < floor {
		e.Pos.Y = floor
		e.Target = w.sampleUpper()
	}
}

// updateHelper retargets the nearest asteroid and fires at it when ready.
func (w *World) updateHelper() {
	h := w.Helper
	from := h.Position(w.Player.Pos)

	h.TargetID = object.InvalidID
	best := math.Inf(1)
	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		if d := physics.DistanceSquared(from, a.Pos); d < best {
			best = d
			h.TargetID = a.ID
		}
	}

	if !h.Ready(w.Clock) {
		return
	}
	target, ok := w.Asteroid(h.TargetID)
	if !ok {
		return
	}
	h.LastShotAt = w.Clock
	dir := target.Pos.Sub(from).Normalize()
	w.PlayerBullets = append(w.PlayerBullets, object.NewBullet(from, dir, true))
}

// updateLifeGifts advances the pickup pulse and collects gifts the player
// touches.
func (w *World) updateLifeGifts(dt float64) {
	w.GiftPulse = math.Mod(w.GiftPulse+dt*config.GiftPulseRate, 2*math.Pi)

	p := w.Player
	for _, g := range w.LifeGifts {
		g.Age += dt
		if !physics.Within(g.Pos, p.Pos, config.GiftPickupRadius) {
			continue
		}
		g.MarkDestroyed()
		p.Lives++
		p.Flicker = true
		p.FlickerStart = w.Clock
		w.spawnExplosion(p.Pos, 15, 0.3)
		w.emit(EventLifeGift)
	}
	w.LifeGifts = object.Compact(w.LifeGifts)
}

// updatePlayerBullets moves player and helper bullets, counts misses and
// resolves hits on asteroids.
func (w *World) updatePlayerBullets(scale float64) {
	for _, b := range w.PlayerBullets {
		if b.IsDestroyed() {
			continue
		}
		b.Move(scale)
		if physics.OutsidePlane(b.Pos, config.GridLength) {
			b.MarkDestroyed()
			if !b.Helper {
				w.countMiss()
			}
			continue
		}
		w.hitAsteroid(b)
	}
	w.PlayerBullets = object.Compact(w.PlayerBullets)
	w.Asteroids = object.Compact(w.Asteroids)
}

// countMiss records a player bullet that left the field.
func (w *World) countMiss() {
	p := w.Player
	p.MissedBullets = min(p.MissedBullets+1, config.MaxMissedBullets)
	if p.MissedBullets >= config.MaxMissedBullets {
		w.endGame()
	}
}

// updateEnemyBullets moves enemy bullets and checks their swept path
// against the player.
func (w *World) updateEnemyBullets(scale float64) {
	speed := w.Enemy.BulletSpeed() * scale
	for _, b := range w.EnemyBullets {
		if b.IsDestroyed() {
			continue
		}
		from, delta := b.Advance(speed)
		if physics.OutsidePlane(b.Pos, config.GridLength) {
			b.MarkDestroyed()
			continue
		}
		w.sweepEnemyBullet(b, from, delta)
	}
	w.EnemyBullets = object.Compact(w.EnemyBullets)
}

// enemyFire lets a visible enemy fire a random shot.
func (w *World) enemyFire() {
	e := w.Enemy
	if !e.Visible || !w.rng.Chance(config.EnemyFireChance) {
		return
	}
	w.EnemyBullets = append(w.EnemyBullets, object.NewEnemyBullet(e.Pos, object.RandomFireDirection(w.rng)))
}

// updateAsteroids moves asteroids, updates their trails and wraps them at
// the edge of the field.
func (w *World) updateAsteroids(dt, scale float64) {
	for _, a := range w.Asteroids {
		a.Move(scale)
		a.UpdateTrail(dt, w.rng)
		a.Wrap(config.GridLength, w.rng)
	}
}

func (w *World) ageExplosions(dt float64) {
	for _, e := range w.Explosions {
		e.Advance(dt)
	}
	w.Explosions = object.Compact(w.Explosions)
}

// expireEffects ends the aurora and the pickup flicker once they have run.
func (w *World) expireEffects() {
	w.Aurora.Expire(w.Clock, config.AuroraSeconds)
	if p := w.Player; p.Flicker && w.Clock-p.FlickerStart > config.FlickerSeconds {
		p.Flicker = false
	}
}

func (w *World) updateBackdrop(scale float64) {
	for i := range w.Stars {
		w.Stars[i].Twinkle(w.rng)
	}
	for i := range w.Planets {
		w.Planets[i].Spin(scale)
	}
}
