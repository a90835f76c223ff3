package pinball

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/physics"
	"github.com/vovakirdan/tui-pinball/internal/sim"
)

// Glyphs used for the playfield.
const (
	BallGlyph    = '●'
	FlipperGlyph = '█'
	BumperGlyph  = '◉'
	PegGlyph     = '▒'
	ButtonGlyph  = '▌'
	BorderHoriz  = '─'
)

// Colors per obstacle kind.
const (
	wallColor      = core.ColorGray
	slingshotColor = core.ColorOrange
	oneWayColor    = core.ColorCyan
	bumperColor    = core.ColorMagenta
	capsuleColor   = core.ColorWhite
	buttonColor    = core.ColorYellow
	ditchColor     = core.ColorGreen
	lidColor       = core.ColorRed
	flipperColor   = core.ColorBrightCyan
	ballColor      = core.ColorBrightWhite
)

// hitGlow is the highlight ratio above which a hit obstacle is drawn bright.
const hitGlow = 0.05

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	snap := g.sim.Snapshot()
	vp := g.viewport(dst)

	g.renderHUD(dst, snap)
	renderTable(dst, vp, g.table, snap)
	renderFlippers(dst, vp, snap)
	renderBall(dst, vp, snap)
	g.renderStatus(dst, snap)
	g.renderOverlay(dst, snap)
}

// viewport fits the table between the HUD row and the status row.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	area := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	b := g.table.Bounds
	return core.NewViewport(area, b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// renderHUD draws score and balls left on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	var balls string
	if snap.Practice {
		balls = "Practice"
	} else {
		balls = fmt.Sprintf("Balls: %d", snap.Lives)
	}
	dst.DrawTextCentered(0, balls, core.ColorDefault)

	level := fmt.Sprintf("Level: %.1f", g.difficulty.Level(snap.Score, snap.Tick))
	dst.DrawText(dst.Width()-len(level)-1, 0, level)
}

// renderStatus draws the plunger charge bar on the bottom row.
func (g *Game) renderStatus(dst *core.Screen, snap sim.Snapshot) {
	y := dst.Height() - 1
	if !g.sim.InPlungerLane() && snap.PlungerCharge == 0 {
		for x := range dst.Width() {
			dst.SetColored(x, y, BorderHoriz, wallColor)
		}
		return
	}

	const barW = 20
	filled := int(math.Round(snap.PlungerCharge * barW))
	bar := "Plunger [" + strings.Repeat("=", filled) + strings.Repeat(" ", barW-filled) + "]"
	dst.DrawTextColored(1, y, bar, core.ColorYellow)
}

// renderOverlay draws pause and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch {
	case snap.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// renderTable draws every static obstacle, highlighting recent hits.
func renderTable(dst *core.Screen, vp core.Viewport, t *sim.Table, snap sim.Snapshot) {
	for _, s := range t.Walls {
		drawSegment(dst, vp, s, wallColor)
	}
	for _, a := range t.Arcs {
		drawArc(dst, vp, a, wallColor)
	}
	for _, s := range t.OneWays {
		drawSegment(dst, vp, s, oneWayColor)
	}
	for i, s := range t.Slingshots {
		drawSegment(dst, vp, s, glow(slingshotColor, snap.Hits.Slingshots, i))
	}
	for _, c := range t.Capsules {
		a, b := c.Ends()
		fillCapsule(dst, vp, a, b, c.Radius, c.Radius, PegGlyph, capsuleColor)
	}
	for i, b := range t.Bumpers {
		color := glow(bumperColor, snap.Hits.Bumpers, i)
		drawArc(dst, vp, physics.Arc{Center: b.Center, Radius: b.Radius, Start: 0, End: physics.TwoPi - 1e-9}, color)
		x, y := vp.ToCell(b.Center[0], b.Center[1])
		dst.SetColored(x, y, BumperGlyph, color)
	}
	for i, b := range t.Buttons {
		plot(dst, vp, b.Segment, ButtonGlyph, glow(buttonColor, snap.Hits.Buttons, i))
	}
	for i, d := range t.Ditches {
		view := sim.DitchView{}
		if i < len(snap.Ditches) {
			view = snap.Ditches[i]
		}
		if view.Closed {
			drawSegment(dst, vp, d.Lid, lidColor)
			continue
		}
		color := ditchColor
		if view.Remaining > 0 {
			color = core.ColorYellow
		}
		drawSegment(dst, vp, d.Floor, color)
	}
}

func renderFlippers(dst *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	for _, f := range snap.Flippers {
		fillCapsule(dst, vp, f.Pivot, f.Tip, f.R0, f.R1, FlipperGlyph, flipperColor)
	}
}

func renderBall(dst *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	x, y := vp.ToCell(snap.Ball[0], snap.Ball[1])
	if vp.Area.Contains(x, y) {
		dst.SetColored(x, y, BallGlyph, ballColor)
	}
}

// glow brightens c while the obstacle's hit timer is running.
func glow(c core.Color, ratios []float64, i int) core.Color {
	if i < len(ratios) && ratios[i] > hitGlow {
		return c.Bright()
	}
	return c
}

// sampleStep is the world distance between samples along a curve: half a
// cell, so no cell along the path is skipped.
func sampleStep(vp core.Viewport) float64 {
	w, h := vp.CellSize()
	return math.Min(w, h) / 2
}

// drawSegment plots a segment with a glyph matching its on-screen slope.
func drawSegment(dst *core.Screen, vp core.Viewport, s physics.Segment, c core.Color) {
	plot(dst, vp, s, lineGlyph(vp, s.Dir()), c)
}

func plot(dst *core.Screen, vp core.Viewport, s physics.Segment, glyph rune, c core.Color) {
	n := int(math.Ceil(s.Length()/sampleStep(vp))) + 1
	for i := 0; i <= n; i++ {
		p := s.P0.Add(s.Dir().Mul(float64(i) / float64(n)))
		setWorld(dst, vp, p, glyph, c)
	}
}

func drawArc(dst *core.Screen, vp core.Viewport, a physics.Arc, c core.Color) {
	sweep := a.Sweep()
	n := int(math.Ceil(sweep*a.Radius/sampleStep(vp))) + 1
	for i := 0; i <= n; i++ {
		angle := a.Start + sweep*float64(i)/float64(n)
		p := a.Point(angle)
		tangent := mgl64.Vec2{-math.Sin(angle), math.Cos(angle)}
		setWorld(dst, vp, p, lineGlyph(vp, tangent), c)
	}
}

// fillCapsule fills every cell whose centre lies inside the tapered capsule
// a-b, then traces the axis so thin shapes stay visible.
func fillCapsule(dst *core.Screen, vp core.Viewport, a, b mgl64.Vec2, r0, r1 float64, glyph rune, c core.Color) {
	r := math.Max(r0, r1)
	x0, y0 := vp.ToCell(math.Min(a[0], b[0])-r, math.Max(a[1], b[1])+r)
	x1, y1 := vp.ToCell(math.Max(a[0], b[0])+r, math.Min(a[1], b[1])-r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !vp.Area.Contains(cx, cy) {
				continue
			}
			wx, wy := vp.ToWorld(cx, cy)
			p := mgl64.Vec2{wx, wy}
			closest, t := physics.ClosestPointOnSegment(p, a, b)
			if p.Sub(closest).Len() <= physics.Lerp(r0, r1, t) {
				dst.SetColored(cx, cy, glyph, c)
			}
		}
	}
	plot(dst, vp, physics.Segment{P0: a, P1: b}, glyph, c)
}

func setWorld(dst *core.Screen, vp core.Viewport, p mgl64.Vec2, glyph rune, c core.Color) {
	x, y := vp.ToCell(p[0], p[1])
	if vp.Area.Contains(x, y) {
		dst.SetColored(x, y, glyph, c)
	}
}

// lineGlyph picks a box-drawing rune for a world direction, measured in
// screen cells so the terminal's tall cells are taken into account.
func lineGlyph(vp core.Viewport, dir mgl64.Vec2) rune {
	dx := dir[0] * vp.Scale
	dy := dir[1] * vp.Scale / core.CellAspect
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += math.Pi
	}
	switch deg := mgl64.RadToDeg(angle); {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '│'
	default:
		return '╲'
	}
}
