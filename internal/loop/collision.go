package loop

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// hitAsteroid resolves b against the first asteroid it touches. A worn
// asteroid shatters into two fragments while the field has room for them.
func (w *World) hitAsteroid(b *object.Bullet) {
	for _, a := range w.Asteroids {
		if a.IsDestroyed() || !physics.Within(b.Pos, a.Pos, a.Size+config.AsteroidBulletRadius) {
			continue
		}

		w.spawnExplosion(b.Pos, 10, 0.3)
		b.MarkDestroyed()
		a.Size -= config.AsteroidBulletDamage
		if a.Size < config.AsteroidSplitSize {
			w.shatter(a)
		}
		return
	}
}

func (w *World) shatter(a *object.Asteroid) {
	w.spawnExplosion(a.Pos, 15, 0.5)
	if w.liveAsteroids() < config.AsteroidPopulationCap {
		for range 2 {
			w.addAsteroid(object.Fragment(w.rng, a, w.SplitInheritChance))
		}
	}
	a.MarkDestroyed()
	if w.Helper.TargetID == a.ID {
		w.Helper.TargetID = object.InvalidID
	}
}

// sweepEnemyBullet samples the segment an enemy bullet covered this tick
// and applies the first contact with the player or the shield.
func (w *World) sweepEnemyBullet(b *object.EnemyBullet, from, delta physics.Vec3) {
	p := w.Player
	last := float64(config.EnemyBulletPathSamples - 1)
	for i := range config.EnemyBulletPathSamples {
		at := from.Add(delta.Scale(float64(i) / last))
		dist := physics.Distance(at, p.Pos)

		switch {
		case !p.Shield && dist < config.PlayerHitRadius:
			w.hurtPlayer()
			w.spawnExplosion(at, 20, 0.5)
			b.MarkDestroyed()
			return
		case p.Shield && dist < config.ShieldRadius:
			w.shieldHit()
			w.spawnExplosion(at, 12, 0.3)
			b.MarkDestroyed()
			return
		}
	}
}

// checkBulletsVsEnemy damages a visible enemy with every bullet inside its
// hit radius.
func (w *World) checkBulletsVsEnemy() {
	e := w.Enemy
	for _, b := range w.PlayerBullets {
		if b.IsDestroyed() || !e.Visible {
			continue
		}
		if !physics.Within(b.Pos, e.Pos, e.HitRadius()) {
			continue
		}
		b.MarkDestroyed()
		e.Lives--
		w.spawnExplosion(b.Pos, 10, 0.5)
		if e.Lives <= 0 {
			w.defeatEnemy(e.Pos)
		}
	}
	w.PlayerBullets = object.Compact(w.PlayerBullets)
}

// checkBulletsVsBullets cancels player bullets against enemy bullets. Each
// player bullet takes out at most one enemy bullet.
func (w *World) checkBulletsVsBullets() {
	for _, pb := range w.PlayerBullets {
		for _, eb := range w.EnemyBullets {
			if eb.IsDestroyed() {
				continue
			}
			if !physics.Within(pb.Pos, eb.Pos, config.BulletCollisionRadius) {
				continue
			}
			w.spawnExplosion(physics.Midpoint(pb.Pos, eb.Pos), 15, 0.7)
			pb.MarkDestroyed()
			eb.MarkDestroyed()
			break
		}
	}
	w.PlayerBullets = object.Compact(w.PlayerBullets)
	w.EnemyBullets = object.Compact(w.EnemyBullets)
}

// checkAsteroidsVsPlayer either costs the player a life and relocates the
// asteroid, or bounces it off the shield.
func (w *World) checkAsteroidsVsPlayer() {
	p := w.Player
	for _, a := range w.Asteroids {
		if p.Shield {
			w.bounceOffShield(a)
			continue
		}
		if !physics.SpheresOverlap(a.Pos, a.Size, p.Pos, config.PlayerBodyRadius) {
			continue
		}
		w.hurtPlayer()
		w.spawnExplosion(a.Pos, a.Size+5, 0.7)
		a.Pos = w.sampleAnywhere()
		a.ClearTrail()
	}
}

// bounceOffShield reflects an asteroid touching the shield and pushes it
// back outside.
func (w *World) bounceOffShield(a *object.Asteroid) {
	p := w.Player
	d := a.Pos.Sub(p.Pos)
	dist := d.Len()
	contact := config.ShieldRadius + a.Size - config.ShieldContactInset
	if dist >= contact {
		return
	}

	w.shieldHit()
	// An asteroid dead on the player leaves along +y.
	n := physics.Vec3{Y: 1}
	if dist > 0 {
		n = d.Scale(1 / dist)
	}
	w.spawnExplosion(p.Pos.Add(n.Scale(config.ShieldRadius)), a.Size*0.5, 0.4)

	jitter := w.rng.Uniform(1-config.ShieldBounceJitter, 1+config.ShieldBounceJitter)
	a.Velocity = a.Velocity.Add(n.Scale(a.Velocity.Dot(n) * config.ShieldBounceFactor * jitter))
	a.Pos = p.Pos.Add(n.Scale(contact + config.ShieldContactInset))
}

// checkEnemyVsPlayer handles the enemy ramming an unshielded player. Both
// lose a life and the enemy jumps away.
func (w *World) checkEnemyVsPlayer() {
	e, p := w.Enemy, w.Player
	if !e.Visible || p.Shield {
		return
	}
	d := p.Pos.Sub(e.Pos)
	dist := d.Len()
	if dist >= e.BodyRadius() {
		return
	}

	w.hurtPlayer()
	e.Lives--
	w.spawnExplosion(physics.Midpoint(p.Pos, e.Pos), 40, 0.8)
	if dist > 0 {
		p.Nudge(d.X/dist*config.EnemyRamNudge, d.Y/dist*config.EnemyRamNudge)
	}

	last := e.Pos
	e.Pos = w.sampleUpper()
	if e.Lives <= 0 {
		w.defeatEnemy(last)
	}
}
