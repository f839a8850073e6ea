package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(constant.MinTermWidth, constant.MinTermHeight)
	return screen
}

func newTestWorld() *engine.World {
	return engine.NewWorld(config.Default(), 1)
}

// screenRow returns one terminal row as a string
func screenRow(t *testing.T, screen tcell.SimulationScreen, y int) string {
	t.Helper()
	cells, w, h := screen.GetContents()
	if y < 0 || y >= h {
		t.Fatalf("Row %d out of range, screen height %d", y, h)
	}
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

// screenText returns the whole terminal as newline-joined rows
func screenText(t *testing.T, screen tcell.SimulationScreen) string {
	t.Helper()
	_, _, h := screen.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = screenRow(t, screen, y)
	}
	return strings.Join(rows, "\n")
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

// playerCell returns the terminal cell of the ship's top-left corner
// for a freshly reset world
func playerCell() (int, int) {
	return constant.PlayerStartX / constant.CellPxX,
		constant.PlayerStartY/constant.CellPxY + constant.HUDRows
}

// TestRendererDrawsPlayerSprite verifies the ship art lands at the
// projected start position
func TestRendererDrawsPlayerSprite(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	r.DrawFlight(w)
	r.Show()

	cx, cy := playerCell()
	// nose cone on the top art row
	if got := cellRune(t, screen, cx+3, cy); got != '/' {
		t.Errorf("Expected '/' at player nose (%d,%d), got %q", cx+3, cy, got)
	}
	if got := cellRune(t, screen, cx+4, cy); got != '\\' {
		t.Errorf("Expected '\\' at player nose (%d,%d), got %q", cx+4, cy, got)
	}
	// full-width wing row at the art bottom
	if got := cellRune(t, screen, cx, cy+3); got != '/' {
		t.Errorf("Expected '/' at left wingtip, got %q", got)
	}
}

// TestRendererHonorsVisibility verifies blink-off frames leave no ship
// runes behind
func TestRendererHonorsVisibility(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.Player.Visible = false

	r.DrawFlight(w)
	r.Show()

	cx, cy := playerCell()
	shipRunes := "/\\|=_"
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 8; dx++ {
			got := cellRune(t, screen, cx+dx, cy+dy)
			if strings.ContainsRune(shipRunes, got) {
				t.Fatalf("Expected no ship rune at (%d,%d) while invisible, got %q", cx+dx, cy+dy, got)
			}
		}
	}
}

// TestRendererBankingVariants verifies the lean frames differ from
// level flight
func TestRendererBankingVariants(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.Player.Banking = -1

	r.DrawFlight(w)
	r.Show()

	cx, cy := playerCell()
	// level flight has '/' at the left wingtip; the left bank tucks it
	if got := cellRune(t, screen, cx, cy+3); got == '/' {
		t.Errorf("Expected tucked left wing while banking, got %q", got)
	}
	if got := cellRune(t, screen, cx+2, cy+3); got != '/' {
		t.Errorf("Expected '/' at banked wing position, got %q", got)
	}
}

// TestRendererDrawsEnemyAndBullet verifies pool entities project onto
// their cells
func TestRendererDrawsEnemyAndBullet(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	e, ok := w.Enemies.Spawn()
	if !ok {
		t.Fatal("Expected enemy spawn to succeed")
	}
	e.Kind = entity.KindHeavy
	e.PreciseX = vmath.FromInt(96)
	e.PreciseY = vmath.FromInt(64)

	if _, ok := w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletSingle,
		vmath.FromInt(128), vmath.FromInt(120), 0, 0, 10); !ok {
		t.Fatal("Expected bullet spawn to succeed")
	}

	r.DrawFlight(w)
	r.Show()

	// heavy hull row: [======] with its top-left at (96/4, 64/8+1)
	ex, ey := 96/constant.CellPxX, 64/constant.CellPxY+constant.HUDRows
	if got := cellRune(t, screen, ex, ey); got != '[' {
		t.Errorf("Expected '[' at heavy corner (%d,%d), got %q", ex, ey, got)
	}
	if got := cellRune(t, screen, ex+7, ey); got != ']' {
		t.Errorf("Expected ']' at heavy corner, got %q", got)
	}

	bx, by := 128/constant.CellPxX, 120/constant.CellPxY+constant.HUDRows
	if got := cellRune(t, screen, bx+1, by); got != '|' {
		t.Errorf("Expected '|' at bullet cell (%d,%d), got %q", bx+1, by, got)
	}
}

// TestRendererHazardOverridesKindArt verifies hazard slots draw the
// asteroid regardless of their nominal kind
func TestRendererHazardOverridesKindArt(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	e, _ := w.Enemies.Spawn()
	e.Kind = entity.KindHeavy
	e.Hazard = true
	e.PreciseX = vmath.FromInt(96)
	e.PreciseY = vmath.FromInt(64)

	r.DrawFlight(w)
	r.Show()

	ex, ey := 96/constant.CellPxX, 64/constant.CellPxY+constant.HUDRows
	if got := cellRune(t, screen, ex, ey); got == '[' {
		t.Error("Expected asteroid art for hazard, got heavy hull")
	}
	if got := cellRune(t, screen, ex+1, ey); got != '.' {
		t.Errorf("Expected '.' on asteroid rim, got %q", got)
	}
}

// TestRendererDyingEnemyBlinks verifies the blink-out draws on flash
// frames and vanishes on gap frames
func TestRendererDyingEnemyBlinks(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	e, _ := w.Enemies.Spawn()
	e.Kind = entity.KindHeavy
	e.State = entity.StateDying
	e.PreciseX = vmath.FromInt(96)
	e.PreciseY = vmath.FromInt(64)
	ex, ey := 96/constant.CellPxX, 64/constant.CellPxY+constant.HUDRows

	e.FlashTimer = 2
	r.DrawFlight(w)
	r.Show()
	if got := cellRune(t, screen, ex, ey); got != '[' {
		t.Errorf("Expected dying enemy visible on flash frame, got %q", got)
	}

	e.FlashTimer = 1
	r.DrawFlight(w)
	r.Show()
	if got := cellRune(t, screen, ex, ey); got == '[' {
		t.Error("Expected dying enemy hidden on gap frame")
	}
}

// TestRendererScreenShake verifies the playfield displaces by one cell
// while shake runs and the HUD stays put
func TestRendererScreenShake(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.ScreenShake = 2 // even count shifts +1

	r.DrawFlight(w)
	r.Show()

	cx, cy := playerCell()
	if got := cellRune(t, screen, cx+3+1, cy); got != '/' {
		t.Errorf("Expected shaken nose one cell right, got %q", got)
	}
	hud := screenRow(t, screen, 0)
	if !strings.Contains(hud, "SCORE") {
		t.Error("Expected HUD unaffected by shake")
	}
}

// TestRendererHUDContent verifies the status row shows score, health,
// weapon and progression
func TestRendererHUDContent(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.Score.Add(1234)

	r.DrawFlight(w)
	r.Show()

	hud := screenRow(t, screen, 0)
	if !strings.Contains(hud, "SCORE  1234") {
		t.Errorf("Expected score on HUD, got %q", hud)
	}
	if !strings.Contains(hud, "[==========]") {
		t.Errorf("Expected full HP bar, got %q", hud)
	}
	if !strings.Contains(hud, "SINGLE") {
		t.Errorf("Expected weapon name on HUD, got %q", hud)
	}
	if !strings.Contains(hud, "ZONE 1") {
		t.Errorf("Expected zone on HUD, got %q", hud)
	}
	if !strings.Contains(hud, "WAVE 0") {
		t.Errorf("Expected wave count on HUD, got %q", hud)
	}
}

// TestRendererHUDLowHealth verifies the bar drains proportionally
func TestRendererHUDLowHealth(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.Player.HP = w.Player.MaxHP / 2

	r.DrawFlight(w)
	r.Show()

	hud := screenRow(t, screen, 0)
	if !strings.Contains(hud, "[=====-----]") {
		t.Errorf("Expected half-drained HP bar, got %q", hud)
	}
}

// TestRendererComboIndicator verifies the multiplier appears only
// while its display window runs
func TestRendererComboIndicator(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	r.DrawFlight(w)
	r.Show()
	if strings.Contains(screenRow(t, screen, 0), "x1") {
		t.Error("Expected no combo indicator on fresh run")
	}

	w.Combo.RegisterKill()
	w.Combo.RegisterKill()
	w.Combo.RegisterKill()
	r.DrawFlight(w)
	r.Show()
	if !strings.Contains(screenRow(t, screen, 0), "x3") {
		t.Errorf("Expected x3 combo on HUD, got %q", screenRow(t, screen, 0))
	}
}

// TestRendererTooSmallTerminal verifies the scene is replaced by a
// size warning instead of clipping silently
func TestRendererTooSmallTerminal(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	screen.SetSize(40, 10)
	r := New(screen, false)
	w := newTestWorld()

	r.DrawFlight(w)
	r.Show()

	text := screenText(t, screen)
	if !strings.Contains(text, "too small") {
		t.Errorf("Expected size warning, got:\n%s", text)
	}
	if strings.Contains(text, "SCORE") {
		t.Error("Expected no HUD on undersized terminal")
	}
}

// TestRendererOverlayBox verifies the overlay centers its box with
// title, body and card rows inside a border
func TestRendererOverlayBox(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()

	r.DrawFlight(w)
	r.DrawOverlay(&core.OverlayContent{
		Title: "PAUSED",
		Lines: []string{"press p to resume"},
		Card: []core.CardEntry{
			{Key: "SCORE", Value: "4200"},
		},
	})
	r.Show()

	text := screenText(t, screen)
	for _, want := range []string{"PAUSED", "press p to resume", "SCORE", "4200", "+"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected overlay to contain %q, got:\n%s", want, text)
		}
	}
}

// TestRendererColorModes verifies color mode styles sprites and
// monochrome mode leaves the default style untouched
func TestRendererColorModes(t *testing.T) {
	w := newTestWorld()
	cx, cy := playerCell()

	mono := newTestScreen(t)
	defer mono.Fini()
	New(mono, false).DrawFlight(w)
	mono.Show()
	cells, sw, _ := mono.GetContents()
	if got := cells[cy*sw+cx+3].Style; got != tcell.StyleDefault {
		t.Error("Expected default style in monochrome mode")
	}

	colored := newTestScreen(t)
	defer colored.Fini()
	New(colored, true).DrawFlight(w)
	colored.Show()
	cells, sw, _ = colored.GetContents()
	if got := cells[cy*sw+cx+3].Style; got == tcell.StyleDefault {
		t.Error("Expected styled sprite in color mode")
	}
}

// TestRendererStarfieldScrolls verifies the background pattern moves
// with the scroll odometer
func TestRendererStarfieldScrolls(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	r := New(screen, false)
	w := newTestWorld()
	w.Player.Visible = false // keep the scene to stars only

	r.DrawFlight(w)
	r.Show()
	before := screenText(t, screen)

	w.ScrollY = constant.CellPxY * 5
	r.DrawFlight(w)
	r.Show()
	after := screenText(t, screen)

	if before == after {
		t.Error("Expected starfield to move after scrolling")
	}
	if !strings.ContainsRune(before, '.') {
		t.Error("Expected stars in the background")
	}
}
