package object

import (
	"math"
	"testing"

	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

func TestNewAsteroidRanges(t *testing.T) {
	rng := physics.NewRand(1)
	for i := 0; i < 200; i++ {
		a := NewAsteroid(rng, physics.Vec3{})
		if a.Size < config.AsteroidMinSize || a.Size >= config.AsteroidMaxSize {
			t.Fatalf("size %v out of range", a.Size)
		}
		if a.Type < 0 || int(a.Type) >= config.AsteroidTypes {
			t.Fatalf("type %v out of range", a.Type)
		}
		if math.Abs(a.Velocity.X) > 3 || math.Abs(a.Velocity.Y) > 3 {
			t.Fatalf("velocity %v out of range", a.Velocity)
		}
		if a.Velocity.Z != 0 {
			t.Fatalf("velocity z = %v, want 0", a.Velocity.Z)
		}
		if a.Heat < 0.7 || a.Heat >= 1 {
			t.Fatalf("heat %v out of range", a.Heat)
		}
	}
}

func TestFragment(t *testing.T) {
	rng := physics.NewRand(2)
	parent := NewAsteroid(rng, physics.Vec3{X: 100, Y: -50, Z: 40})
	parent.Type = AsteroidJagged

	inherited := 0
	for i := 0; i < 200; i++ {
		child := Fragment(rng, parent, 1)
		if child.Size < config.ChildMinSize || child.Size >= config.ChildMaxSize {
			t.Fatalf("child size %v out of range", child.Size)
		}
		if physics.Distance(child.Pos, parent.Pos) > math.Sqrt(3)*config.ChildOffset {
			t.Fatalf("child at %v too far from parent at %v", child.Pos, parent.Pos)
		}
		if child.Type == parent.Type {
			inherited++
		}
	}
	if inherited != 200 {
		t.Errorf("inherited %d of 200 with chance 1", inherited)
	}
}

func TestTrailRespectsCap(t *testing.T) {
	rng := physics.NewRand(3)
	a := NewAsteroid(rng, physics.Vec3{})
	a.Size = 9
	for i := 0; i < 500; i++ {
		a.UpdateTrail(0.001, rng)
		if len(a.Trail) > config.TrailCapSmall {
			t.Fatalf("trail length %d exceeds cap %d", len(a.Trail), config.TrailCapSmall)
		}
	}
	for _, p := range a.Trail {
		if f := p.Fade(); f < 0 || f > 1 {
			t.Errorf("fade %v out of [0, 1]", f)
		}
	}
}

func TestTrailExpires(t *testing.T) {
	rng := physics.NewRand(4)
	a := NewAsteroid(rng, physics.Vec3{})
	a.Trail = []TrailParticle{{Lifetime: 0.5}, {Lifetime: 2}}
	// A large step ages both; only the long-lived one survives, plus any new ember.
	a.UpdateTrail(1, rng)
	for _, p := range a.Trail {
		if p.Lifetime == 0.5 {
			t.Fatalf("expired ember still present: %+v", p)
		}
	}
}

func TestWrap(t *testing.T) {
	rng := physics.NewRand(5)
	a := &Asteroid{
		Pos:      physics.Vec3{X: 995, Y: 100},
		Velocity: physics.Vec3{X: 2, Y: 1},
		Size:     10,
		Trail:    []TrailParticle{{Lifetime: 1}},
	}
	speed := math.Hypot(a.Velocity.X, a.Velocity.Y)

	if !a.Wrap(config.GridLength, rng) {
		t.Fatal("Wrap() = false, want true")
	}
	if a.Pos.X != -990+10 {
		t.Errorf("x = %v, want %v", a.Pos.X, -980.0)
	}
	if a.Pos.Y != 100 {
		t.Errorf("y = %v, want unchanged 100", a.Pos.Y)
	}
	if len(a.Trail) != 0 {
		t.Errorf("trail length = %d, want 0", len(a.Trail))
	}
	if got := math.Hypot(a.Velocity.X, a.Velocity.Y); math.Abs(got-speed) > 1e-9 {
		t.Errorf("planar speed = %v, want %v", got, speed)
	}
}

func TestWrapInside(t *testing.T) {
	rng := physics.NewRand(6)
	a := &Asteroid{Pos: physics.Vec3{X: 10, Y: 10}, Size: 10}
	if a.Wrap(config.GridLength, rng) {
		t.Error("Wrap() = true for an asteroid well inside the area")
	}
}

func TestMoveWrapsRotation(t *testing.T) {
	a := &Asteroid{Rotation: physics.Vec3{X: 359}, RotationSpeed: physics.Vec3{X: 2, Y: -2}}
	a.Move(1)
	if a.Rotation.X != 1 || a.Rotation.Y != 358 {
		t.Errorf("rotation = %v, want (1, 358, 0)", a.Rotation)
	}
}
