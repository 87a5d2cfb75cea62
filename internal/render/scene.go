package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

var (
	white        = colorful.Color{R: 1, G: 1, B: 1}
	gridColor    = colorful.Color{R: 0.25, G: 0.25, B: 0.35}
	trailColor   = colorful.Color{R: 0.9, G: 0.6, B: 0.2}
	giftColor    = colorful.Color{R: 0.2, G: 1, B: 0.4}
	helperColor  = colorful.Color{R: 0.3, G: 0.9, B: 1}
	shieldColor  = colorful.Color{R: 0.3, G: 0.6, B: 1}
	bulletColor  = colorful.Color{R: 1, G: 1, B: 0.3}
	blastInner   = colorful.Color{R: 1, G: 0.95, B: 0.5}
	blastOuter   = colorful.Color{R: 0.9, G: 0.2, B: 0.05}
	enemyHurt    = colorful.Color{R: 1, G: 0.1, B: 0.1}
	enemyCockpit = colorful.Color{R: 0.6, G: 0.9, B: 1}
)

// hullColors by damage tier.
var hullColors = [...]colorful.Color{
	object.HullHealthy:  {R: 0.3, G: 0.9, B: 0.3},
	object.HullDamaged:  {R: 0.95, G: 0.8, B: 0.2},
	object.HullCritical: {R: 1, G: 0.25, B: 0.2},
}

// asteroidColors by asteroid type.
var asteroidColors = [...]colorful.Color{
	object.AsteroidRocky:  {R: 0.55, G: 0.5, B: 0.45},
	object.AsteroidJagged: {R: 0.6, G: 0.4, B: 0.3},
	object.AsteroidRound:  {R: 0.45, G: 0.45, B: 0.5},
}

// asteroidProfiles holds the vertex radii of each asteroid mesh.
var asteroidProfiles = [...][]float64{
	object.AsteroidRocky:  {1, 0.85, 1.05, 0.9, 1, 0.8, 0.95, 1.1},
	object.AsteroidJagged: {1.1, 0.7, 1.05, 0.65, 1.15, 0.7, 1, 0.6, 1.1, 0.75},
	object.AsteroidRound:  {1, 0.97, 1, 0.98, 1, 0.96, 1, 0.99, 1, 0.97, 1, 0.98},
}

// shipModel is the player hull in model space, nose toward -y (screen up).
var shipModel = []draw.Point{{X: 0, Y: -1.2}, {X: 0.8, Y: 0.8}, {X: 0, Y: 0.4}, {X: -0.8, Y: 0.8}}

// scene draws one snapshot onto a canvas.
type scene struct {
	c     *draw.Canvas
	v     view
	s     *loop.Snapshot
	buf   []draw.Point
	model []draw.Point
}

func (sc *scene) draw() {
	sc.drawAurora()
	sc.drawStars()
	sc.drawPlanets()
	sc.drawBounds()
	sc.drawTrails()
	sc.drawAsteroids()
	sc.drawGifts()
	sc.drawBullets()
	sc.drawEnemy()
	sc.drawHelper()
	sc.drawPlayer()
	sc.drawExplosions()
}

// drawAurora paints fading color bands across the top of the view.
func (sc *scene) drawAurora() {
	colors := sc.s.Aurora
	if len(colors) == 0 {
		return
	}
	band := sc.v.height / 4 / float64(len(colors))
	for i, col := range colors {
		fade := 1 - float64(i)/float64(len(colors))
		for y := float64(i) * band; y < float64(i+1)*band; y++ {
			sc.c.DrawLine(draw.Point{X: 0, Y: y}, draw.Point{X: sc.v.width, Y: y}, object.Dim(col, 0.6*fade))
		}
	}
}

func (sc *scene) drawStars() {
	for _, st := range sc.s.Stars {
		if !sc.v.inFront(st.Pos.Z) {
			continue
		}
		p := sc.v.project(st.Pos)
		if !sc.v.visible(p, 0) {
			continue
		}
		twinkle := 0.75 + 0.25*math.Sin(sc.s.Clock*st.BlinkRate*2*math.Pi)
		sc.c.SetFloat(p.X, p.Y, object.Dim(white, physics.Clamp(st.Brightness*twinkle, 0, 1)))
	}
}

func (sc *scene) drawPlanets() {
	for _, pl := range sc.s.Planets {
		if !sc.v.inFront(pl.Pos.Z) {
			continue
		}
		p := sc.v.project(pl.Pos)
		r := sc.v.size(pl.Size, pl.Pos.Z)
		if !sc.v.visible(p, r*1.8) {
			continue
		}
		sc.c.DrawCircle(p, r, pl.Color, true)
		if pl.Rings {
			sc.drawRing(p, r*1.7, physics.Radians(pl.Rotation), pl.RingColor)
		}
	}
}

// drawRing draws a flattened ellipse tilted by angle.
func (sc *scene) drawRing(center draw.Point, r, angle float64, col colorful.Color) {
	sc.model = draw.RegularPolygon(sc.model, draw.Point{}, 1, 24, 0)
	for i := range sc.model {
		sc.model[i].Y *= 0.3
	}
	sc.buf = draw.Transform(sc.buf, sc.model, center, angle, r)
	sc.c.DrawPolygon(sc.buf, col, false)
}

// drawBounds outlines the play area on the plane.
func (sc *scene) drawBounds() {
	g := config.GridLength
	corners := [4]physics.Vec3{{X: -g, Y: -g}, {X: g, Y: -g}, {X: g, Y: g}, {X: -g, Y: g}}
	pts := sc.c.BorrowPoints(len(corners))
	for i, c := range corners {
		pts[i] = sc.v.project(c)
	}
	sc.c.DrawPolygon(pts, gridColor, false)
}

func (sc *scene) drawTrails() {
	for _, a := range sc.s.Asteroids {
		for _, tp := range a.Trail {
			p := sc.v.project(tp.Pos)
			r := sc.v.size(tp.Size*0.5, tp.Pos.Z)
			if !sc.v.visible(p, r) {
				continue
			}
			col := object.Dim(trailColor, tp.Fade()*tp.Heat)
			if r < 1 {
				sc.c.SetFloat(p.X, p.Y, col)
			} else {
				sc.c.DrawCircle(p, r, col, true)
			}
		}
	}
}

func (sc *scene) drawAsteroids() {
	for _, a := range sc.s.Asteroids {
		p := sc.v.project(a.Pos)
		r := sc.v.size(a.Size, a.Pos.Z)
		if !sc.v.visible(p, r*1.2) {
			continue
		}
		typ := int(a.Type) % len(asteroidProfiles)
		sc.buf = draw.IrregularPolygon(sc.buf, p, r, asteroidProfiles[typ], physics.Radians(a.Rotation.Z))
		sc.c.DrawPolygon(sc.buf, object.Dim(asteroidColors[typ], 0.7+0.3*a.Heat), true)
	}
}

// drawGifts draws pulsing diamond pickups.
func (sc *scene) drawGifts() {
	pulse := 1 + 0.3*math.Sin(sc.s.GiftPulse)
	for _, g := range sc.s.LifeGifts {
		p := sc.v.project(g)
		r := sc.v.size(12*pulse, g.Z)
		if !sc.v.visible(p, r) {
			continue
		}
		sc.buf = draw.RegularPolygon(sc.buf, p, r, 4, 0)
		sc.c.DrawPolygon(sc.buf, giftColor, true)
		sc.c.DrawCircle(p, r*0.3, white, true)
	}
}

func (sc *scene) drawBullets() {
	for _, b := range sc.s.PlayerBullets {
		col := bulletColor
		if b.Helper {
			col = helperColor
		}
		sc.drawDot(b.Pos, 3, col)
	}
	for _, b := range sc.s.EnemyBullets {
		sc.drawDot(b, 4, sc.s.Enemy.BulletColor)
	}
}

// drawDot draws a small round marker of world radius r.
func (sc *scene) drawDot(pos physics.Vec3, r float64, col colorful.Color) {
	p := sc.v.project(pos)
	lr := sc.v.size(r, pos.Z)
	if !sc.v.visible(p, lr) {
		return
	}
	if lr < 1 {
		sc.c.SetFloat(p.X, p.Y, col)
		return
	}
	sc.c.DrawCircle(p, lr, col, true)
}

// drawEnemy draws the saucer. Its hull reddens as it takes damage.
func (sc *scene) drawEnemy() {
	e := sc.s.Enemy
	if !e.Visible {
		return
	}
	p := sc.v.project(e.Pos)
	r := sc.v.size(config.EnemyHitRadiusPerSize*0.6*2, e.Pos.Z)
	if !sc.v.visible(p, r) {
		return
	}
	hull := e.Color.BlendRgb(enemyHurt, e.Damage*0.7)

	sc.model = draw.RegularPolygon(sc.model, draw.Point{}, 1, 16, 0)
	for i := range sc.model {
		sc.model[i].Y *= 0.4
	}
	sc.buf = draw.Transform(sc.buf, sc.model, p, 0, r)
	sc.c.DrawPolygon(sc.buf, hull, true)
	sc.c.DrawCircle(draw.Point{X: p.X, Y: p.Y - r*0.25}, r*0.35, enemyCockpit, true)

	// One light per evolution stage along the rim.
	for i := 0; i <= e.Evolution; i++ {
		a := math.Pi * float64(i+1) / float64(e.Evolution+2)
		sc.c.SetFloat(p.X-math.Cos(a)*r*0.8, p.Y+r*0.2, e.BulletColor)
	}
}

func (sc *scene) drawHelper() {
	h := sc.s.Helper
	if !h.Active {
		return
	}
	p := sc.v.project(h.Pos)
	if h.Aiming {
		t := sc.v.project(h.Target)
		sc.c.DrawLine(p, t, object.Dim(helperColor, 0.25))
	}
	sc.buf = draw.Transform(sc.buf, shipModel, p, 0, sc.v.size(10, h.Pos.Z))
	sc.c.DrawPolygon(sc.buf, helperColor, true)
}

// drawPlayer draws the ship, blinking while the pickup flicker runs, and
// the shield around it.
func (sc *scene) drawPlayer() {
	pl := sc.s.Player
	p := sc.v.project(pl.Pos)

	if object.ShouldRenderBlink(pl.FlickerLeft, config.PlayerBlinkFrequency) {
		sc.buf = draw.Transform(sc.buf, shipModel, p, 0, sc.v.size(18, pl.Pos.Z))
		sc.c.DrawPolygon(sc.buf, hullColors[pl.Tier], true)
	}

	if pl.Shield {
		col := shieldColor.BlendRgb(white, pl.ShieldFlash)
		sc.c.DrawCircle(p, sc.v.size(config.ShieldRadius, pl.Pos.Z), col, false)
	}
}

// drawExplosions draws expanding rings that cool from yellow to red.
func (sc *scene) drawExplosions() {
	for _, x := range sc.s.Explosions {
		age := physics.Clamp(x.Age, 0, 1)
		p := sc.v.project(x.Pos)
		r := sc.v.size(x.Size*(0.3+0.7*age), x.Pos.Z)
		if !sc.v.visible(p, r) {
			continue
		}
		col := object.Dim(blastInner.BlendRgb(blastOuter, age), 1-age*0.7)
		sc.c.DrawCircle(p, r, col, age < 0.3)
	}
}
