package loop

import (
	"math"
	"testing"

	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(physics.NewRand(11), nil)
}

func TestApplyQuit(t *testing.T) {
	s := newTestSession(t)
	if !s.Apply(input.ActionQuit) {
		t.Error("quit action did not report quit")
	}
	if s.Apply(input.ActionFire) {
		t.Error("fire reported quit")
	}
}

func TestMovesOnlyWhileRunning(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*World)
		moves bool
	}{
		{"running", func(*World) {}, true},
		{"paused", func(w *World) { w.Paused = true }, false},
		{"resuming", func(w *World) { w.Paused = true; w.Resuming = true }, false},
		{"game over", func(w *World) { w.GameOver = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			tt.setup(s.World)
			start := s.World.Player.Pos

			s.Apply(input.ActionMoveRight)
			s.Apply(input.ActionFire)

			moved := s.World.Player.Pos != start
			if moved != tt.moves {
				t.Errorf("moved = %v, want %v", moved, tt.moves)
			}
			if fired := len(s.World.PlayerBullets) > 0; fired != tt.moves {
				t.Errorf("fired = %v, want %v", fired, tt.moves)
			}
		})
	}
}

func TestMoveSteps(t *testing.T) {
	tests := []struct {
		action input.Action
		dx, dy float64
	}{
		{input.ActionMoveUp, 0, config.MoveStep},
		{input.ActionMoveDown, 0, -config.MoveStep},
		{input.ActionMoveLeft, -config.MoveStep, 0},
		{input.ActionMoveRight, config.MoveStep, 0},
		{input.ActionMoveUpLeft, -config.MoveStep * config.DiagonalFactor, config.MoveStep * config.DiagonalFactor},
		{input.ActionMoveDownRight, config.MoveStep * config.DiagonalFactor, -config.MoveStep * config.DiagonalFactor},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := newTestSession(t)
			start := s.World.Player.Pos
			s.Apply(tt.action)
			got := s.World.Player.Pos.Sub(start)
			if math.Abs(got.X-tt.dx) > 1e-9 || math.Abs(got.Y-tt.dy) > 1e-9 || got.Z != 0 {
				t.Errorf("moved by %v, want (%v, %v, 0)", got, tt.dx, tt.dy)
			}
		})
	}
}

func TestMovesStayInsideField(t *testing.T) {
	s := newTestSession(t)
	w := s.World
	limit := config.GridLength - config.PlayerBoundaryMargin
	w.Player.Pos.X = limit
	w.Player.Dir = physics.Vec3{X: 1}

	for range 5 {
		s.Apply(input.ActionMoveRight)
		if x := w.Player.Pos.X; x > limit {
			t.Fatalf("player x = %v after moving right at the edge, limit %v", x, limit)
		}
	}
	s.Apply(input.ActionMoveDownRight)
	if x := w.Player.Pos.X; x > limit {
		t.Errorf("player x = %v after a diagonal move, limit %v", x, limit)
	}

	w.Asteroids = nil
	w.Enemy.Visible = false
	w.Enemy.TeleportAt = math.Inf(1)
	s.Apply(input.ActionFire)
	w.Tick(config.TickStep)
	if w.Player.MissedBullets != 0 {
		t.Errorf("missed bullets = %d, a shot from the edge should start inside the field", w.Player.MissedBullets)
	}
}

func TestShieldToggleWorksWhilePaused(t *testing.T) {
	s := newTestSession(t)
	s.World.Paused = true
	s.Apply(input.ActionToggleShield)
	if !s.World.Player.Shield {
		t.Error("shield did not toggle on while paused")
	}
	s.Apply(input.ActionToggleShield)
	if s.World.Player.Shield {
		t.Error("shield did not toggle off")
	}
}

func TestFireCooldown(t *testing.T) {
	s := newTestSession(t)
	w := s.World

	if !w.Fire() {
		t.Fatal("first shot refused")
	}
	if w.Fire() {
		t.Error("second shot inside the cooldown accepted")
	}
	w.Clock += 1/w.Player.FireRate + 0.01
	if !w.Fire() {
		t.Error("shot after the cooldown refused")
	}
	if len(w.PlayerBullets) != 2 {
		t.Errorf("bullets = %d, want 2", len(w.PlayerBullets))
	}
}

func TestFireFan(t *testing.T) {
	s := newTestSession(t)
	w := s.World
	w.Player.BulletCount = 3

	w.Fire()

	if len(w.PlayerBullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(w.PlayerBullets))
	}
	left, mid, right := w.PlayerBullets[0].Dir, w.PlayerBullets[1].Dir, w.PlayerBullets[2].Dir
	if physics.Distance(mid, w.Player.Dir) > 1e-9 {
		t.Errorf("middle bullet dir %v, want %v", mid, w.Player.Dir)
	}
	if math.Abs(left.X+right.X) > 1e-9 || math.Abs(left.Y-right.Y) > 1e-9 {
		t.Errorf("fan not symmetric: %v and %v", left, right)
	}
	wantSpread := math.Cos(physics.Radians(config.FanSpreadDegrees))
	if got := left.Dot(mid); math.Abs(got-wantSpread) > 1e-9 {
		t.Errorf("spread cosine = %v, want %v", got, wantSpread)
	}
}

func TestCameraControls(t *testing.T) {
	s := newTestSession(t)
	w := s.World
	start := w.Camera

	s.Apply(input.ActionCameraRight)
	s.Apply(input.ActionCameraUp)
	if w.Camera.X != start.X+config.CameraStep || w.Camera.Z != start.Z+config.CameraStep {
		t.Errorf("camera = %v, want moved one step right and up", w.Camera)
	}

	for range 1000 {
		s.Apply(input.ActionCameraDown)
	}
	if w.Camera.Z != config.CameraMinZ {
		t.Errorf("camera z = %v, want clamped to %v", w.Camera.Z, config.CameraMinZ)
	}

	s.Apply(input.ActionToggleFirstPerson)
	before := w.Camera
	s.Apply(input.ActionCameraLeft)
	if w.Camera != before {
		t.Error("camera moved in first person")
	}
}

func TestCameraIgnoredWhilePaused(t *testing.T) {
	s := newTestSession(t)
	s.World.Paused = true
	before := s.World.Camera
	s.Apply(input.ActionCameraLeft)
	if s.World.Camera != before {
		t.Errorf("camera = %v while paused, want %v", s.World.Camera, before)
	}
}

func TestTogglePause(t *testing.T) {
	s := newTestSession(t)

	s.Apply(input.ActionTogglePause)
	if s.Mode() != ModePaused {
		t.Fatalf("mode = %v, want paused", s.Mode())
	}
	s.Apply(input.ActionTogglePause)
	if s.Mode() != ModeResuming {
		t.Fatalf("mode = %v, want resuming", s.Mode())
	}
	if s.TogglePause() {
		t.Error("toggle accepted while resuming")
	}

	s.World.GameOver = true
	if s.TogglePause() {
		t.Error("toggle accepted after game over")
	}
}

func TestRestart(t *testing.T) {
	var events []Event
	s := NewSession(physics.NewRand(13), func(e Event) { events = append(events, e) })
	first := s.World

	if s.Restart() {
		t.Fatal("restart accepted during play")
	}
	if s.World != first {
		t.Fatal("world replaced during play")
	}

	first.GameOver = true
	first.Player.Lives = 0
	first.EnemiesKilled = 4
	first.FirstPerson = true
	first.Camera.X = 120

	s.Apply(input.ActionRestart)

	w := s.World
	if w == first {
		t.Fatal("restart kept the old world")
	}
	if w.Mode() != ModeRunning || w.Player.Lives != config.InitialLives || w.EnemiesKilled != 0 {
		t.Errorf("new game: mode %v lives %d kills %d", w.Mode(), w.Player.Lives, w.EnemiesKilled)
	}
	if !w.FirstPerson || w.Camera.X != 120 {
		t.Error("view settings not carried over")
	}

	w.endGame()
	if len(events) != 1 || events[0] != EventGameOver {
		t.Errorf("events = %v, want the new world wired to the handler", events)
	}
}
