package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// Renderer paints the world onto a tcell screen. It projects the
// 256x224 logical playfield onto a GridWidth x GridHeight cell grid
// below a one-row HUD and draws back to front with plain SetContent:
// starfield, enemies, bullets, player, HUD. tcell's cell buffer does
// the diffing; there is no compositor.
//
// The caller holds the world's update lock across a Draw call and
// releases it before Show, so terminal I/O never blocks the simulation.
type Renderer struct {
	screen tcell.Screen
	color  bool

	// terminal size cached at the top of each frame
	width, height int
}

// New wraps a screen. color=false forces the terminal default style
// everywhere, for monochrome terminals and for diffable test output.
func New(screen tcell.Screen, color bool) *Renderer {
	return &Renderer{screen: screen, color: color}
}

// fg returns the default style tinted with c, or the plain default in
// monochrome mode
func (r *Renderer) fg(c tcell.Color) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(c)
}

// set paints one cell, dropping anything outside the terminal
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText paints an ASCII string left to right
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.set(x+i, y, ch, style)
	}
}

// drawSprite paints a sprite with its top-left corner at cell (cx, cy).
// Space runes are transparent and leave the background visible.
func (r *Renderer) drawSprite(cx, cy int, art []string, style tcell.Style) {
	for dy, row := range art {
		for dx, ch := range row {
			if ch == ' ' {
				continue
			}
			r.set(cx+dx, cy+dy, ch, style)
		}
	}
}

// cellOf converts a Q8.8 playfield position to the terminal cell of its
// top-left corner, offset below the HUD band
func cellOf(px, py int32) (int, int) {
	return vmath.ToInt(px) / constant.CellPxX,
		vmath.ToInt(py)/constant.CellPxY + constant.HUDRows
}

// shakeOffset is the whole-cell displacement applied to the playfield
// while an impact shake runs. Alternating sign frame to frame reads as
// a rattle at cell resolution.
func shakeOffset(w *engine.World) int {
	if w.ScreenShake <= 0 {
		return 0
	}
	if w.ScreenShake&1 == 0 {
		return 1
	}
	return -1
}

// Show flushes the frame to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawFlight paints the full flight scene without flushing, so the
// shell can layer an overlay before Show
func (r *Renderer) DrawFlight(w *engine.World) {
	r.screen.Clear()
	r.width, r.height = r.screen.Size()

	if r.width < constant.MinTermWidth || r.height < constant.MinTermHeight {
		r.drawSizeWarning()
		return
	}

	shake := shakeOffset(w)
	r.drawStarfield(w)
	r.drawEnemies(w, shake)
	r.drawBullets(w, shake)
	r.drawPlayer(w, shake)
	r.drawHUD(w)
}

// drawSizeWarning replaces the scene when the terminal is too small to
// hold the playfield
func (r *Renderer) drawSizeWarning() {
	msg := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
		constant.MinTermWidth, constant.MinTermHeight, r.width, r.height)
	x := (r.width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, r.height/2, msg, r.fg(tcell.ColorRed))
}

// zoneStarStyles tints the background per zone so progression is
// visible without a level banner
func (r *Renderer) zoneStarStyles(zone int) (dim, bright tcell.Style) {
	switch zone {
	case 1:
		return r.fg(tcell.ColorTeal), r.fg(tcell.ColorAqua)
	case 2:
		return r.fg(tcell.ColorPurple), r.fg(tcell.ColorFuchsia)
	default:
		return r.fg(tcell.ColorGray), r.fg(tcell.ColorSilver)
	}
}

// drawStarfield hashes cell coordinates into a sparse fixed star
// pattern and scrolls it with the run's total scroll odometer. The
// pattern is a pure function of position, nothing is stored.
func (r *Renderer) drawStarfield(w *engine.World) {
	scroll := (w.Zone*constant.ZoneLength + w.ScrollY) / constant.CellPxY
	dim, bright := r.zoneStarStyles(w.Zone)

	for cy := 0; cy < constant.GridHeight; cy++ {
		wy := cy - scroll
		for cx := 0; cx < constant.GridWidth; cx++ {
			h := cx*31 + wy*17
			if h < 0 {
				h = -h
			}
			switch h % constant.StarfieldDensity {
			case 0:
				r.set(cx, cy+constant.HUDRows, '.', dim)
			case 1:
				r.set(cx, cy+constant.HUDRows, '*', bright)
			}
		}
	}
}

// enemyColor resolves the style precedence for one slot: dying flash,
// golden shimmer, hit flash, then the archetype palette
func enemyColor(e *entity.Enemy, frame int) tcell.Color {
	switch {
	case e.State == entity.StateDying:
		return tcell.ColorWhite
	case e.Golden:
		if (frame>>2)&1 == 0 {
			return tcell.ColorYellow
		}
		return tcell.ColorWhite
	case e.FlashTimer > 0:
		return tcell.ColorWhite
	case e.Hazard:
		return tcell.ColorGray
	case e.Shield:
		return tcell.ColorSilver
	}

	switch e.Kind {
	case entity.KindScout:
		return tcell.ColorGreen
	case entity.KindFighter:
		return tcell.ColorAqua
	case entity.KindHeavy:
		return tcell.ColorRed
	case entity.KindElite:
		return tcell.ColorFuchsia
	default:
		return tcell.ColorWhite
	}
}

// drawEnemies walks the pool directly: dying slots still draw their
// blink-out even though gameplay iteration skips them
func (r *Renderer) drawEnemies(w *engine.World, shake int) {
	for i := range w.Enemies.Slots {
		e := &w.Enemies.Slots[i]
		if e.State == entity.StateInactive {
			continue
		}
		if e.State == entity.StateDying && e.FlashTimer&2 == 0 {
			// gap frames of the blink-out
			continue
		}
		cx, cy := cellOf(e.PreciseX, e.PreciseY)
		r.drawSprite(cx+shake, cy, spriteFor(e), r.fg(enemyColor(e, w.Frame)))
	}
}

func bulletColor(kind entity.BulletKind) tcell.Color {
	switch kind {
	case entity.BulletSpread:
		return tcell.ColorYellow
	case entity.BulletLaser:
		return tcell.ColorAqua
	case entity.BulletEnemyBasic:
		return tcell.ColorRed
	case entity.BulletEnemyAimed:
		return tcell.ColorOrange
	default:
		return tcell.ColorWhite
	}
}

func (r *Renderer) drawBullets(w *engine.World, shake int) {
	w.Bullets.ForEachActive(func(i int, b *entity.Bullet) {
		cx, cy := cellOf(b.PreciseX, b.PreciseY)
		r.drawSprite(cx+shake, cy, bulletSpriteFor(b.Kind), r.fg(bulletColor(b.Kind)))
	})
}

// drawPlayer honors the Visible flag maintained by the player system;
// the mercy-window blink never reaches the renderer as logic, only as
// frames where the ship is simply absent
func (r *Renderer) drawPlayer(w *engine.World, shake int) {
	p := &w.Player
	if !p.Visible {
		return
	}

	color := tcell.ColorWhite
	switch {
	case p.ComboFlash > 0:
		color = tcell.ColorYellow
	case p.InvincibleTimer > 0:
		color = tcell.ColorSilver
	}

	cx, cy := cellOf(p.PreciseX, p.PreciseY)
	r.drawSprite(cx+shake, cy, playerSpriteFor(p.Banking), r.fg(color))
}

const hpBarSegments = 10

// drawHUD fills the top status row: score, health bar, weapon, combo
// multiplier, zone and wave counters
func (r *Renderer) drawHUD(w *engine.World) {
	label := r.fg(tcell.ColorGray)

	scoreStyle := r.fg(tcell.ColorWhite)
	if w.Score.Saturated() && (w.Frame>>3)&1 == 0 {
		// register ceiling, flash like the kill screen it is
		scoreStyle = r.fg(tcell.ColorYellow)
	}
	r.drawText(0, 0, fmt.Sprintf("SCORE %5d", w.Score.Value()), scoreStyle)

	filled := 0
	if w.Player.MaxHP > 0 {
		filled = w.Player.HP * hpBarSegments / w.Player.MaxHP
		if filled == 0 && w.Player.HP > 0 {
			filled = 1
		}
	}
	barColor := tcell.ColorGreen
	switch {
	case w.Player.HP*4 <= w.Player.MaxHP:
		barColor = tcell.ColorRed
	case w.Player.HP*2 <= w.Player.MaxHP:
		barColor = tcell.ColorYellow
	}
	r.drawText(13, 0, "HP [", label)
	for i := 0; i < hpBarSegments; i++ {
		ch := '-'
		style := label
		if i < filled {
			ch = '='
			style = r.fg(barColor)
		}
		r.set(17+i, 0, ch, style)
	}
	r.set(27, 0, ']', label)

	r.drawText(30, 0, w.Player.Weapon.String(), r.fg(tcell.ColorWhite))

	if w.Combo.DisplayTimer > 0 && w.Combo.Multiplier > 1 {
		comboColor := tcell.ColorYellow
		if w.Combo.Multiplier >= constant.ComboMaxMultiplier {
			comboColor = tcell.ColorRed
		}
		r.drawText(38, 0, fmt.Sprintf("x%d", w.Combo.Multiplier), r.fg(comboColor))
	}

	r.drawText(43, 0, fmt.Sprintf("ZONE %d", w.Zone+1), label)
	r.drawText(52, 0, fmt.Sprintf("WAVE %d", w.WaveCount), label)
}

// DrawOverlay centers a bordered box over whatever the frame already
// holds. Body lines are centered; card rows align keys left and values
// right. The caller flushes with Show.
func (r *Renderer) DrawOverlay(c *core.OverlayContent) {
	r.width, r.height = r.screen.Size()

	inner := len(c.Title)
	for _, ln := range c.Lines {
		if len(ln) > inner {
			inner = len(ln)
		}
	}
	for _, e := range c.Card {
		if n := len(e.Key) + len(e.Value) + 2; n > inner {
			inner = n
		}
	}
	inner += 2 // one cell of breathing room per side

	rows := 1 + len(c.Lines) + len(c.Card)
	if len(c.Lines) > 0 || len(c.Card) > 0 {
		rows++ // blank line under the title
	}

	boxW := inner + 4
	boxH := rows + 2
	x0 := (r.width - boxW) / 2
	y0 := (r.height - boxH) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	border := r.fg(tcell.ColorGray)
	r.set(x0, y0, '+', border)
	r.set(x0+boxW-1, y0, '+', border)
	r.set(x0, y0+boxH-1, '+', border)
	r.set(x0+boxW-1, y0+boxH-1, '+', border)
	for x := x0 + 1; x < x0+boxW-1; x++ {
		r.set(x, y0, '-', border)
		r.set(x, y0+boxH-1, '-', border)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		r.set(x0, y, '|', border)
		r.set(x0+boxW-1, y, '|', border)
		for x := x0 + 1; x < x0+boxW-1; x++ {
			r.set(x, y, ' ', tcell.StyleDefault)
		}
	}

	y := y0 + 1
	r.drawText(x0+2+(inner-len(c.Title))/2, y, c.Title, r.fg(tcell.ColorYellow))
	y++
	if len(c.Lines) > 0 || len(c.Card) > 0 {
		y++
	}
	for _, ln := range c.Lines {
		r.drawText(x0+2+(inner-len(ln))/2, y, ln, r.fg(tcell.ColorWhite))
		y++
	}
	for _, e := range c.Card {
		r.drawText(x0+2, y, e.Key, r.fg(tcell.ColorGray))
		r.drawText(x0+2+inner-len(e.Value), y, e.Value, r.fg(tcell.ColorWhite))
		y++
	}
}
