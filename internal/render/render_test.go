package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                       string
		termW, termH               int
		wantW, wantH, wantC, wantR int
	}{
		{"small", 80, 24, 80, 24, 0, 0},
		{"exact", config.MaxTermWidth, config.MaxTermHeight, config.MaxTermWidth, config.MaxTermHeight, 0, 0},
		{"wide", config.MaxTermWidth + 40, 30, config.MaxTermWidth, 30, 20, 0},
		{"tall", 100, config.MaxTermHeight + 11, 100, config.MaxTermHeight, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, c, r := clampTermSize(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH || c != tt.wantC || r != tt.wantR {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d, want %d, %d, %d, %d",
					tt.termW, tt.termH, w, h, c, r, tt.wantW, tt.wantH, tt.wantC, tt.wantR)
			}
		})
	}
}

func TestRenderFrame(t *testing.T) {
	world := loop.NewWorld(physics.NewRand(1))
	var buf bytes.Buffer
	r := New(&buf, fixedSize(100, 40))

	if err := r.Render(world.Snapshot()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[?25l") {
		t.Error("first frame does not hide the cursor")
	}
	if !strings.Contains(out, "Lives: 9") {
		t.Errorf("status line missing lives: %q", out)
	}
	if !strings.Contains(out, "\033[38;2;") {
		t.Error("frame has no colored output")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*loop.World)
		want  string
	}{
		{"paused", func(w *loop.World) { w.Paused = true }, "PAUSED"},
		{"resuming", func(w *loop.World) { w.Resuming = true }, "Get Ready to Fight, Astronaut!"},
		{"countdown", func(w *loop.World) { w.Resuming = true; w.ResumeElapsed = 2.5 }, "\033[20;60H3"},
		{"game over", func(w *loop.World) { w.GameOver = true }, "press R to restart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := loop.NewWorld(physics.NewRand(2))
			tt.setup(world)
			var buf bytes.Buffer
			r := New(&buf, fixedSize(120, 40))
			if err := r.Render(world.Snapshot()); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("frame does not contain %q", tt.want)
			}
		})
	}
}

func TestRenderNotice(t *testing.T) {
	world := loop.NewWorld(physics.NewRand(3))
	var buf bytes.Buffer
	r := New(&buf, fixedSize(120, 40))

	s := world.Snapshot()
	s.Notice = "SERVER SHUTTING DOWN"
	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "SERVER SHUTTING DOWN") {
		t.Error("notice not drawn")
	}
}

func TestRenderFirstPerson(t *testing.T) {
	world := loop.NewWorld(physics.NewRand(4))
	world.FirstPerson = true
	var buf bytes.Buffer
	r := New(&buf, fixedSize(120, 30))
	if err := r.Render(world.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "View: pilot") {
		t.Error("status line does not report the pilot view")
	}
}

func TestCloseShowsCursor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, fixedSize(80, 24))
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[?25h") {
		t.Errorf("Close wrote %q, want show-cursor sequence", buf.String())
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Errorf("fit pad = %q", got)
	}
	if got := fit("abcdef", 3); got != "abc" {
		t.Errorf("fit truncate = %q", got)
	}
	if got := fit("abc", 0); got != "" {
		t.Errorf("fit zero = %q", got)
	}
}

func TestProjectCentersCamera(t *testing.T) {
	s := &loop.Snapshot{Camera: physics.Vec3{X: 100, Z: config.CameraStartZ}}
	v := newView(s, config.ViewWidth, config.ViewHeight)
	p := v.project(physics.Vec3{X: 100})
	if p.X != config.ViewWidth/2 || p.Y != config.ViewHeight/2 {
		t.Errorf("point under camera projects to %v, want view center", p)
	}
	near := v.size(10, 50)
	far := v.size(10, 0)
	if near <= far {
		t.Errorf("higher objects should appear larger: near %v far %v", near, far)
	}
}
