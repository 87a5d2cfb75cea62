package loop

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. It shares no mutable state with the World it came from.
type Snapshot struct {
	Mode      Mode
	Clock     float64
	Message   string // Pause or resume message, empty when none
	Countdown int    // Resume countdown digit, 0 when none
	Notice    string // Front-end banner such as an inactivity warning

	Player PlayerView
	Enemy  EnemyView
	Helper HelperView

	Asteroids     []AsteroidView
	PlayerBullets []BulletView
	EnemyBullets  []physics.Vec3
	Explosions    []object.Explosion
	LifeGifts     []physics.Vec3
	GiftPulse     float64

	Stars   []object.Star
	Planets []object.Planet
	Aurora  []colorful.Color // Nil when the aurora is off

	EnemiesKilled int
	Camera        physics.Vec3
	FirstPerson   bool
}

type PlayerView struct {
	Pos           physics.Vec3
	Lives         int
	MissedBullets int
	BulletCount   int
	FireRate      float64
	Tier          object.DamageTier
	Shield        bool
	ShieldFlash   float64 // 1 right after a shield hit, fading to 0
	FlickerLeft   float64 // Seconds of pickup flicker remaining
}

type EnemyView struct {
	Pos         physics.Vec3
	Visible     bool
	Lives       int
	MaxLives    int
	Evolution   int
	Style       int
	Damage      float64
	Color       colorful.Color
	BulletColor colorful.Color
}

type HelperView struct {
	Active bool
	Pos    physics.Vec3
	Target physics.Vec3
	Aiming bool
}

type AsteroidView struct {
	Pos      physics.Vec3
	Size     float64
	Type     object.AsteroidType
	Rotation physics.Vec3
	Heat     float64
	Trail    []object.TrailParticle
}

type BulletView struct {
	Pos    physics.Vec3
	Helper bool
}

// Overlay messages.
const (
	pauseMessage  = "Waiting for your arrival"
	resumeMessage = "Get Ready to Fight, Astronaut!"
)

// ResumeCountdown returns the digit to show while resuming: 3, 2 or 1 once
// the resume message has been shown, and 0 otherwise.
func (w *World) ResumeCountdown() int {
	if !w.Resuming || w.ResumeElapsed < config.ResumeMessageSeconds {
		return 0
	}
	left := config.ResumeMessageSeconds + config.ResumeCountdownSeconds - w.ResumeElapsed
	return max(1, int(math.Ceil(left)))
}

// Snapshot copies the current state for rendering.
func (w *World) Snapshot() *Snapshot {
	p, e, h := w.Player, w.Enemy, w.Helper
	s := &Snapshot{
		Mode:  w.Mode(),
		Clock: w.Clock,
		Player: PlayerView{
			Pos:           p.Pos,
			Lives:         p.Lives,
			MissedBullets: p.MissedBullets,
			BulletCount:   p.BulletCount,
			FireRate:      p.FireRate,
			Tier:          p.Tier(),
			Shield:        p.Shield,
			ShieldFlash:   math.Max(0, 1-(w.Clock-p.LastShieldHit)/config.FlickerSeconds),
		},
		Enemy: EnemyView{
			Pos:         e.Pos,
			Visible:     e.Visible,
			Lives:       e.Lives,
			MaxLives:    e.MaxLives,
			Evolution:   e.Evolution,
			Style:       e.Style,
			Damage:      e.Damage(),
			Color:       e.Color,
			BulletColor: e.BulletColor,
		},
		Helper: HelperView{
			Active: h.Active,
			Pos:    h.Position(p.Pos),
		},
		GiftPulse:     w.GiftPulse,
		Stars:         append([]object.Star(nil), w.Stars...),
		Planets:       append([]object.Planet(nil), w.Planets...),
		EnemiesKilled: w.EnemiesKilled,
		Camera:        w.Camera,
		FirstPerson:   w.FirstPerson,
	}

	if p.Flicker {
		s.Player.FlickerLeft = math.Max(0, config.FlickerSeconds-(w.Clock-p.FlickerStart))
	}

	if target, ok := w.Asteroid(h.TargetID); ok && h.Active {
		s.Helper.Target = target.Pos
		s.Helper.Aiming = true
	}

	switch s.Mode {
	case ModePaused:
		s.Message = pauseMessage
	case ModeResuming:
		if s.Countdown = w.ResumeCountdown(); s.Countdown == 0 {
			s.Message = resumeMessage
		}
	}

	s.Asteroids = make([]AsteroidView, 0, len(w.Asteroids))
	for _, a := range w.Asteroids {
		s.Asteroids = append(s.Asteroids, AsteroidView{
			Pos:      a.Pos,
			Size:     a.Size,
			Type:     a.Type,
			Rotation: a.Rotation,
			Heat:     a.Heat,
			Trail:    append([]object.TrailParticle(nil), a.Trail...),
		})
	}
	s.PlayerBullets = make([]BulletView, 0, len(w.PlayerBullets))
	for _, b := range w.PlayerBullets {
		s.PlayerBullets = append(s.PlayerBullets, BulletView{Pos: b.Pos, Helper: b.Helper})
	}
	s.EnemyBullets = make([]physics.Vec3, 0, len(w.EnemyBullets))
	for _, b := range w.EnemyBullets {
		s.EnemyBullets = append(s.EnemyBullets, b.Pos)
	}
	s.Explosions = make([]object.Explosion, 0, len(w.Explosions))
	for _, x := range w.Explosions {
		s.Explosions = append(s.Explosions, *x)
	}
	s.LifeGifts = make([]physics.Vec3, 0, len(w.LifeGifts))
	for _, g := range w.LifeGifts {
		s.LifeGifts = append(s.LifeGifts, g.Pos)
	}
	if w.Aurora.Active {
		s.Aurora = append([]colorful.Color(nil), w.Aurora.Colors...)
	}
	return s
}
