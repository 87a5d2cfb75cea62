package loop

import "github.com/tomz197/ufostrike/internal/loop/config"

// Mode is the session phase.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeResuming
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeResuming:
		return "resuming"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode reports the current session phase.
func (w *World) Mode() Mode {
	switch {
	case w.GameOver:
		return ModeGameOver
	case w.Resuming:
		return ModeResuming
	case w.Paused:
		return ModePaused
	default:
		return ModeRunning
	}
}

// Tick advances the simulation by dt seconds. It does nothing after game
// over and only runs the resume countdown while resuming.
func (w *World) Tick(dt float64) {
	switch w.Mode() {
	case ModeGameOver, ModePaused:
		return
	case ModeResuming:
		w.ResumeElapsed += dt
		if w.ResumeElapsed >= config.ResumeMessageSeconds+config.ResumeCountdownSeconds {
			w.Resuming = false
			w.Paused = false
			w.ResumeElapsed = 0
			w.emit(EventResumed)
		}
		return
	}

	w.Clock += dt
	// Per-tick speeds are tuned for the nominal step.
	scale := dt / config.TickStep

	w.moveEnemy(scale)
	if w.Helper.Active {
		w.updateHelper()
	}
	w.updateLifeGifts(dt)
	w.updatePlayerBullets(scale)
	w.updateEnemyBullets(scale)
	w.enemyFire()
	w.checkBulletsVsEnemy()
	w.checkBulletsVsBullets()
	w.updateAsteroids(dt, scale)
	w.checkAsteroidsVsPlayer()
	w.checkEnemyVsPlayer()
	w.ageExplosions(dt)
	w.expireEffects()
	w.Player.Confine()
	w.updateBackdrop(scale)
}
