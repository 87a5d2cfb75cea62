package physics

import "testing"

func TestRandIsDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("sample %d differs: %v != %v", i, x, y)
		}
	}
}

func TestUniformRange(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(7, 12)
		if v < 7 || v >= 12 {
			t.Fatalf("Uniform(7, 12) = %v, out of range", v)
		}
	}
}

func TestPointAwayFrom(t *testing.T) {
	r := NewRand(7)
	area := Area{MinX: -800, MaxX: 800, MinY: -800, MaxY: 800, MinZ: 30, MaxZ: 80}
	avoid := Vec3{Z: 50}
	for i := 0; i < 500; i++ {
		p := r.PointAwayFrom(area, avoid, 150)
		if Distance(p, avoid) < 150 {
			t.Fatalf("point %v is within 150 of %v", p, avoid)
		}
		if p.X < area.MinX || p.X >= area.MaxX || p.Y < area.MinY || p.Y >= area.MaxY ||
			p.Z < area.MinZ || p.Z >= area.MaxZ {
			t.Fatalf("point %v is outside area", p)
		}
	}
}

func TestPointAwayFromTerminates(t *testing.T) {
	r := NewRand(3)
	tiny := Area{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1, MinZ: 0, MaxZ: 1}
	p := r.PointAwayFrom(tiny, Vec3{}, 100)
	if p.X < -1 || p.X >= 1 {
		t.Errorf("fallback point %v should stay inside the area", p)
	}
}
