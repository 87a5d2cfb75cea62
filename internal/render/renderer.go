// Package render draws game snapshots as colored half-block graphics on an
// ANSI terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop"
	"github.com/tomz197/ufostrike/internal/loop/config"
)

// Renderer draws snapshots to a terminal writer.
type Renderer struct {
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	termSize draw.TermSizeFunc
	scene    scene

	started    bool
	prevMode   loop.Mode
	prevNotice string
}

var _ loop.Renderer = (*Renderer)(nil)

// New creates a Renderer writing to w. termSize reports the terminal
// dimensions and is polled every frame to follow resizes; nil uses stdout.
func New(w io.Writer, termSize draw.TermSizeFunc) *Renderer {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight, _ := termSize()
	width, height, offCol, offRow := clampTermSize(termWidth, termHeight)

	canvas := draw.NewScaledCanvas(width, height, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offCol, offRow)
	return &Renderer{
		cw:       draw.NewChunkWriter(w, offCol, offRow),
		canvas:   canvas,
		termSize: termSize,
		scene:    scene{c: canvas},
	}
}

// Render draws one frame.
func (r *Renderer) Render(s *loop.Snapshot) error {
	if !r.started {
		draw.HideCursor(r.cw)
		r.clear()
		r.started = true
	}
	r.updateScreen()

	// Overlays differ per mode, so a mode or notice change wipes the
	// terminal rather than leaving stale text behind.
	if s.Mode != r.prevMode || s.Notice != r.prevNotice {
		r.clear()
		r.prevMode = s.Mode
		r.prevNotice = s.Notice
	}

	r.canvas.Clear()
	r.scene.s = s
	r.scene.v = newView(s, r.canvas.LogicalWidth(), r.canvas.LogicalHeight())
	r.scene.draw()

	if err := r.canvas.Render(r.cw); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.cw); err != nil {
		return err
	}
	r.drawHUD(s)
	r.drawOverlay(s)
	return r.cw.Flush()
}

// Close restores the cursor and clears the screen.
func (r *Renderer) Close() error {
	r.cw.WriteString("\033[0m")
	draw.ClearScreen(r.cw)
	draw.ShowCursor(r.cw)
	return r.cw.Flush()
}

func (r *Renderer) clear() {
	draw.ClearScreen(r.cw)
	r.canvas.ForceRedraw()
}

// updateScreen follows terminal resizes, clamping to the max render size.
func (r *Renderer) updateScreen() {
	termWidth, termHeight, err := r.termSize()
	if err != nil {
		return
	}
	width, height, offCol, offRow := clampTermSize(termWidth, termHeight)

	if width != r.canvas.TerminalWidth() || height != r.canvas.TerminalHeight() ||
		offCol != r.canvas.OffsetCol() || offRow != r.canvas.OffsetRow() {
		r.clear()
	}
	r.canvas.Resize(width, height)
	r.canvas.SetOffset(offCol, offRow)
	r.cw.SetOffset(offCol, offRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the offset that centers the render area.
func clampTermSize(termWidth, termHeight int) (width, height, offCol, offRow int) {
	width = min(termWidth, config.MaxTermWidth)
	height = min(termHeight, config.MaxTermHeight)
	offCol = (termWidth - width) / 2
	offRow = (termHeight - height) / 2
	return
}

// drawHUD writes the status line and the controls hint. Fields are padded
// to a fixed width so shrinking values leave no stale characters.
func (r *Renderer) drawHUD(s *loop.Snapshot) {
	width := r.canvas.TerminalWidth()
	height := r.canvas.TerminalHeight()
	p := s.Player

	shield := "off"
	if p.Shield {
		shield = "ON "
	}
	view := "orbit"
	if s.FirstPerson {
		view = "pilot"
	}
	status := fmt.Sprintf("Lives: %-2d Kills: %-4d Guns: %-2d Rate: %-4.1f Missed: %3d/%d Shield: %s View: %s",
		p.Lives, s.EnemiesKilled, p.BulletCount, p.FireRate, p.MissedBullets, config.MaxMissedBullets, shield, view)
	r.cw.WriteColoredAt(2, 1, fit(status, width-2), hullColors[p.Tier])

	if s.Enemy.Visible && s.Mode == loop.ModeRunning {
		bar := enemyBar(s.Enemy)
		r.cw.WriteColoredAt(width-len([]rune(bar)), 2, bar, s.Enemy.Color)
	}

	hint := "WASD/QEZC move  F fire  I shield  SPACE pause  V view  arrows camera  X quit"
	r.cw.WriteAt(2, height, fit(hint, width-2))
}

// enemyBar renders the enemy's remaining lives as a shaded gauge.
func enemyBar(e loop.EnemyView) string {
	var b strings.Builder
	b.WriteString("UFO ")
	for i := range e.MaxLives {
		level := 0.3
		if i < e.Lives {
			level = 1
		}
		b.WriteRune(draw.ShadeLevel(level))
	}
	return b.String()
}

// drawOverlay writes the centered banners for the current mode.
func (r *Renderer) drawOverlay(s *loop.Snapshot) {
	cx := r.canvas.TerminalWidth() / 2
	cy := r.canvas.TerminalHeight() / 2

	switch s.Mode {
	case loop.ModePaused:
		r.centered(cx, cy-2, "PAUSED")
		r.centered(cx, cy, s.Message)
		r.centered(cx, cy+2, "press SPACE to resume")
	case loop.ModeResuming:
		if s.Message != "" {
			r.centered(cx, cy, s.Message)
		} else if s.Countdown > 0 {
			r.centered(cx, cy, fmt.Sprintf("%d", s.Countdown))
		}
	case loop.ModeGameOver:
		r.drawGameOver(cx, cy, s)
	}

	if s.Notice != "" {
		r.centered(cx, cy+4, s.Notice)
	}
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

func (r *Renderer) drawGameOver(cx, cy int, s *loop.Snapshot) {
	top := cy - len(gameOverArt) - 1
	for i, line := range gameOverArt {
		r.centered(cx, top+i, line)
	}
	r.centered(cx, cy+1, fmt.Sprintf("UFOs destroyed: %d", s.EnemiesKilled))
	r.centered(cx, cy+2, "press R to restart or X to quit")
}

func (r *Renderer) centered(cx, row int, text string) {
	r.cw.WriteAt(max(1, cx-len([]rune(text))/2), row, text)
}

// fit pads or truncates s to exactly n runes.
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) > n {
		return string(rs[:n])
	}
	return s + strings.Repeat(" ", n-len(rs))
}
