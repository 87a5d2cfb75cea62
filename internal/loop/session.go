package loop

import (
	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Session owns the current World and applies user actions to it according
// to the session mode.
type Session struct {
	World *World

	rng     *physics.Rand
	onEvent EventFunc
}

// NewSession starts a game drawing randomness from rng. onEvent may be nil.
func NewSession(rng *physics.Rand, onEvent EventFunc) *Session {
	s := &Session{rng: rng, onEvent: onEvent}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.World = NewWorld(s.rng)
	s.World.OnEvent = s.onEvent
}

// Mode reports the current session phase.
func (s *Session) Mode() Mode {
	return s.World.Mode()
}

// Tick advances the world by dt seconds.
func (s *Session) Tick(dt float64) {
	s.World.Tick(dt)
}

// TogglePause pauses a running game, or starts the resume countdown of a
// paused one. It is ignored after game over and while resuming.
func (s *Session) TogglePause() bool {
	w := s.World
	switch w.Mode() {
	case ModeRunning:
		w.Paused = true
		return true
	case ModePaused:
		w.Resuming = true
		w.ResumeElapsed = 0
		return true
	}
	return false
}

// Restart begins a new game. It only works after game over.
func (s *Session) Restart() bool {
	if !s.World.GameOver {
		return false
	}
	camera, firstPerson := s.World.Camera, s.World.FirstPerson
	s.reset()
	s.World.Camera = camera
	s.World.FirstPerson = firstPerson
	return true
}

// Apply performs one user action. It returns true when the user asked to
// quit. Movement, firing and the camera only respond while running; the
// shield and view toggles always do.
func (s *Session) Apply(a input.Action) (quit bool) {
	w := s.World
	mode := w.Mode()

	switch a {
	case input.ActionQuit:
		return true
	case input.ActionTogglePause:
		s.TogglePause()
	case input.ActionRestart:
		s.Restart()
	case input.ActionToggleShield:
		w.Player.Shield = !w.Player.Shield
	case input.ActionToggleFirstPerson:
		w.FirstPerson = !w.FirstPerson
	case input.ActionCameraUp, input.ActionCameraDown, input.ActionCameraLeft, input.ActionCameraRight:
		if mode == ModeRunning {
			s.moveCamera(a)
		}
	case input.ActionFire:
		if mode == ModeRunning {
			w.Fire()
		}
	default:
		if mode == ModeRunning {
			s.movePlayer(a)
		}
	}
	return false
}

// Fire shoots a volley if the cooldown allows it.
func (w *World) Fire() bool {
	p := w.Player
	if !p.CanFire(w.Clock) {
		return false
	}
	p.LastShotAt = w.Clock
	w.PlayerBullets = append(w.PlayerBullets, p.Volley()...)
	return true
}

var moveSteps = map[input.Action][2]float64{
	input.ActionMoveUp:        {0, 1},
	input.ActionMoveDown:      {0, -1},
	input.ActionMoveLeft:      {-1, 0},
	input.ActionMoveRight:     {1, 0},
	input.ActionMoveUpLeft:    {-config.DiagonalFactor, config.DiagonalFactor},
	input.ActionMoveUpRight:   {config.DiagonalFactor, config.DiagonalFactor},
	input.ActionMoveDownLeft:  {-config.DiagonalFactor, -config.DiagonalFactor},
	input.ActionMoveDownRight: {config.DiagonalFactor, -config.DiagonalFactor},
}

func (s *Session) movePlayer(a input.Action) {
	step, ok := moveSteps[a]
	if !ok {
		return
	}
	p := s.World.Player
	p.Nudge(step[0]*config.MoveStep, step[1]*config.MoveStep)
	p.Confine()
}

// moveCamera pans or zooms the third-person camera. It has no effect in
// first-person view.
func (s *Session) moveCamera(a input.Action) {
	w := s.World
	if w.FirstPerson {
		return
	}
	c := &w.Camera
	switch a {
	case input.ActionCameraUp:
		c.Z = min(config.CameraMaxZ, c.Z+config.CameraStep)
	case input.ActionCameraDown:
		c.Z = max(config.CameraMinZ, c.Z-config.CameraStep)
	case input.ActionCameraLeft:
		c.X = max(-config.CameraMaxX, c.X-config.CameraStep)
	case input.ActionCameraRight:
		c.X = min(config.CameraMaxX, c.X+config.CameraStep)
	}
}
