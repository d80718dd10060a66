package frenzy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '@'
	BarrelChar       = '+'
	ProjectileChar   = '•'
	HostileBigChar   = 'O'
	HostileSmallChar = 'o'
	WallChar         = '█'
	FloorChar        = '·'
)

const (
	hudRows      = 4   // Life, score, missed, mode line
	floorTile    = 100 // World units per checkerboard tile
	barrelLength = 60  // World units from player to barrel tip
	fpViewRatio  = 3.0 // First-person shows a third of the arena
)

// view maps world X/Z coordinates onto screen cells.
// Terminal cells are about twice as tall as wide, so one row covers two
// columns worth of world units.
type view struct {
	cx, cy   float64   // Screen position of center
	center   core.Vec3 // World position shown at cx, cy
	cos, sin float64   // World-to-screen rotation
	upc      float64   // World units per column
}

func newView(snap Snapshot, baseHeight float64, w, h int) view {
	playH := max(h-hudRows, 1)
	zoom := 1.0
	if baseHeight > 0 {
		zoom = snap.Camera.Height / baseHeight
	}

	var (
		half   float64
		rotDeg float64
		center core.Vec3
	)
	switch snap.Camera.Mode {
	case CameraFirstPerson:
		half = snap.ArenaHalf / fpViewRatio * zoom
		center = snap.Player.Pos
		// Heading points to the top of the screen.
		rotDeg = -90 - snap.Player.Heading
	default:
		half = snap.ArenaHalf * 1.05 * zoom
		rotDeg = -snap.Camera.Angle
	}

	upc := max(2*half/float64(max(w, 1)), half/float64(playH))
	if !(upc > 0) {
		// Zero or NaN scale would stall the wall loop.
		upc = 1
	}
	rad := core.Radians(rotDeg)

	return view{
		cx:     float64(w) / 2,
		cy:     float64(hudRows) + float64(playH)/2,
		center: center,
		cos:    math.Cos(rad),
		sin:    math.Sin(rad),
		upc:    upc,
	}
}

func (v view) project(p core.Vec3) (int, int) {
	d := p.Sub(v.center)
	x := d.X*v.cos - d.Z*v.sin
	z := d.X*v.sin + d.Z*v.cos
	col := v.cx + x/v.upc
	row := v.cy + z/(2*v.upc)
	return int(math.Floor(col)), int(math.Floor(row))
}

func (v view) unproject(col, row int) core.Vec3 {
	x := (float64(col) + 0.5 - v.cx) * v.upc
	z := (float64(row) + 0.5 - v.cy) * 2 * v.upc
	return v.center.Add(core.V3(x*v.cos+z*v.sin, 0, -x*v.sin+z*v.cos))
}

// Render draws the arena top-down with a HUD above it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.state.Snapshot()
	v := newView(snap, g.cfg.Camera.Height, dst.Width(), dst.Height())
	arena := Arena{HalfExtent: snap.ArenaHalf}

	g.drawFloor(dst, v, arena)
	g.drawWalls(dst, v, snap.ArenaHalf)

	for _, h := range snap.Hostiles {
		ch, color := HostileSmallChar, core.ColorRed
		if h.Scale >= 1 {
			ch, color = HostileBigChar, core.ColorBrightRed
		}
		x, y := v.project(h.Pos)
		g.setArena(dst, x, y, ch, color)
	}

	for _, p := range snap.Projectiles {
		x, y := v.project(p.Pos)
		g.setArena(dst, x, y, ProjectileChar, core.ColorBrightWhite)
	}

	tip := snap.Player.Pos.Add(core.Heading(snap.Player.Heading).Scale(max(barrelLength, 2*v.upc)))
	bx, by := v.project(tip)
	g.setArena(dst, bx, by, BarrelChar, core.ColorCyan)
	px, py := v.project(snap.Player.Pos)
	g.setArena(dst, px, py, PlayerChar, core.ColorYellow)

	g.drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Player.Score))
	}
}

// setArena draws below the HUD only.
func (g *Game) setArena(dst *core.Screen, x, y int, r rune, c core.Color) {
	play := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	if !play.Contains(x, y) {
		return
	}
	dst.SetColored(x, y, r, c)
}

func (g *Game) drawFloor(dst *core.Screen, v view, arena Arena) {
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			p := v.unproject(x, y)
			if !arena.InBounds(p) {
				continue
			}
			tx := int(math.Floor(p.X / floorTile))
			tz := int(math.Floor(p.Z / floorTile))
			if (tx+tz)%2 == 0 {
				dst.SetColored(x, y, FloorChar, core.ColorLavender)
			}
		}
	}
}

func (g *Game) drawWalls(dst *core.Screen, v view, half float64) {
	step := v.upc / 2
	for t := -half; t <= half; t += step {
		for _, p := range []core.Vec3{
			core.V3(t, 0, -half), core.V3(t, 0, half),
			core.V3(-half, 0, t), core.V3(half, 0, t),
		} {
			x, y := v.project(p)
			g.setArena(dst, x, y, WallChar, core.ColorBlue)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Player Life Remaining: %d", snap.Player.Life))
	dst.DrawText(1, 1, fmt.Sprintf("Game Score: %d", snap.Player.Score))
	dst.DrawText(1, 2, fmt.Sprintf("Player Bullet Missed: %d", snap.Player.Missed))

	status := fmt.Sprintf("Cheat: %s  Follow: %s  Camera: %s",
		onOff(snap.CheatMode), onOff(snap.AutoFollow), snap.Camera.Mode)
	dst.DrawTextColored(1, 3, status, core.ColorGray)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
