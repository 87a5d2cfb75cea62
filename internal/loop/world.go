// Package loop runs the simulation: world state, the fixed-step tick,
// collision resolution and the session that drives it from user input.
package loop

import (
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Sampling volumes for spawns. The upper area keeps the enemy in the top
// share of the plane.
var (
	fullArea = physics.Area{
		MinX: -config.SpawnAreaFraction * config.GridLength,
		MaxX: config.SpawnAreaFraction * config.GridLength,
		MinY: -config.SpawnAreaFraction * config.GridLength,
		MaxY: config.SpawnAreaFraction * config.GridLength,
		MinZ: config.SpawnMinZ,
		MaxZ: config.SpawnMaxZ,
	}
	upperArea = physics.Area{
		MinX: -config.SpawnAreaFraction * config.GridLength,
		MaxX: config.SpawnAreaFraction * config.GridLength,
		MinY: config.UpperAreaFloorFraction * config.GridLength,
		MaxY: config.SpawnAreaFraction * config.GridLength,
		MinZ: config.SpawnMinZ,
		MaxZ: config.SpawnMaxZ,
	}
)

// World holds the entire simulation state of one game.
type World struct {
	Player *object.Player
	Enemy  *object.Enemy
	Helper *object.Helper

	PlayerBullets []*object.Bullet
	EnemyBullets  []*object.EnemyBullet
	Asteroids     []*object.Asteroid
	Explosions    []*object.Explosion
	LifeGifts     []*object.LifeGift
	GiftPulse     float64 // Phase in [0, 2π)

	Stars   []object.Star
	Planets []object.Planet
	Aurora  object.Aurora

	EnemiesKilled int

	Paused        bool
	Resuming      bool
	ResumeElapsed float64
	GameOver      bool

	// Clock is simulated time in seconds. It only advances while running.
	Clock float64

	Camera      physics.Vec3
	FirstPerson bool

	// SplitInheritChance is the probability a fragment keeps its parent's type.
	SplitInheritChance float64

	OnEvent EventFunc

	rng    *physics.Rand
	nextID uint64
}

// NewWorld seeds a fresh game from rng.
func NewWorld(rng *physics.Rand) *World {
	w := &World{
		Player:             object.NewPlayer(),
		Helper:             object.NewHelper(),
		Camera:             physics.Vec3{Y: config.CameraStartY, Z: config.CameraStartZ},
		SplitInheritChance: config.SplitTypeInheritChance,
		rng:                rng,
	}

	w.Enemy = object.NewEnemy(w.sampleUpper(), w.sampleUpper())

	for range config.InitialAsteroids {
		w.addAsteroid(object.NewAsteroid(rng, rng.PointAwayFrom(fullArea, w.Player.Pos, config.SpawnMinPlayerDistance)))
	}

	w.Stars = object.NewStars(rng, config.StarCount)
	w.Planets = object.NewPlanets(rng, config.PlanetCount)
	return w
}

func (w *World) emit(e Event) {
	if w.OnEvent != nil {
		w.OnEvent(e)
	}
}

// sampleUpper picks a point in the upper band away from the player.
func (w *World) sampleUpper() physics.Vec3 {
	return w.rng.PointAwayFrom(upperArea, w.Player.Pos, config.SpawnMinPlayerDistance)
}

// sampleAnywhere picks a point in the full spawn area away from the player.
func (w *World) sampleAnywhere() physics.Vec3 {
	return w.rng.PointAwayFrom(fullArea, w.Player.Pos, config.SpawnMinPlayerDistance)
}

// addAsteroid assigns a fresh ID and adds a to the field.
func (w *World) addAsteroid(a *object.Asteroid) {
	w.nextID++
	a.ID = w.nextID
	w.Asteroids = append(w.Asteroids, a)
}

// AddAsteroid places an asteroid in the field and returns its ID.
func (w *World) AddAsteroid(a *object.Asteroid) uint64 {
	w.addAsteroid(a)
	return a.ID
}

// Asteroid resolves an ID to a live asteroid.
func (w *World) Asteroid(id uint64) (*object.Asteroid, bool) {
	if id == object.InvalidID {
		return nil, false
	}
	for _, a := range w.Asteroids {
		if a.ID == id && !a.IsDestroyed() {
			return a, true
		}
	}
	return nil, false
}

// liveAsteroids counts asteroids not yet marked for removal.
func (w *World) liveAsteroids() int {
	n := 0
	for _, a := range w.Asteroids {
		if !a.IsDestroyed() {
			n++
		}
	}
	return n
}

func (w *World) spawnExplosion(pos physics.Vec3, size, duration float64) {
	w.Explosions = append(w.Explosions, object.NewExplosion(pos, size, duration))
}
