package loop

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// hurtPlayer takes one life. Lives never drop below zero: once the game is
// over further hits in the same tick are ignored.
func (w *World) hurtPlayer() {
	if w.GameOver {
		return
	}
	p := w.Player
	p.Lives--
	p.LastHitAt = w.Clock
	w.emit(EventPlayerHit)
	if p.Lives <= 0 {
		p.Lives = 0
		w.endGame()
	}
}

func (w *World) shieldHit() {
	w.Player.LastShieldHit = w.Clock
	w.emit(EventShieldHit)
}

func (w *World) endGame() {
	if w.GameOver {
		return
	}
	w.GameOver = true
	w.emit(EventGameOver)
}

// defeatEnemy rewards the player and brings the enemy back one generation
// stronger. at is where the enemy was beaten.
func (w *World) defeatEnemy(at physics.Vec3) {
	w.EnemiesKilled++
	if w.EnemiesKilled >= config.HelperUnlockKills && !w.Helper.Active {
		w.Helper.Active = true
		w.emit(EventHelperUnlocked)
	}

	w.LifeGifts = append(w.LifeGifts, object.NewLifeGift(at))
	p := w.Player
	p.BulletCount++
	p.FireRate += config.FireRateStep
	w.spawnExplosion(at, 30, 1.0)

	e := w.Enemy
	e.Pos = w.sampleUpper()
	e.Visible = true
	e.TeleportAt = w.Clock
	e.Evolve(w.rng)

	w.Aurora.Trigger(w.Clock, object.AuroraColors(w.rng, config.AuroraColorCount))
	w.emit(EventEnemyDefeated)
}
