package escape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// Visual characters for rendering
const (
	WallChar         = '█'
	ExitChar         = '▒'
	FreezeChar       = '*'
	AmmoChar         = '+'
	GuardChar        = 'G'
	PlayerBulletChar = '•'
	GuardBulletChar  = '∙'
)

// playerGlyphs maps facing to the player glyph.
var playerGlyphs = map[Dir]rune{
	DirUp:    '▲',
	DirDown:  '▼',
	DirLeft:  '◀',
	DirRight: '▶',
}

// Render draws the session into dst. It only reads the state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.state == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderLevel(dst)
	g.renderPickups(dst)
	g.renderBullets(dst)
	g.renderGuards(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// renderHUD draws health, ammo, guards left, the timer and the freeze countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	info := g.Session()

	healthColor := core.ColorBrightGreen
	switch {
	case info.Health <= 30:
		healthColor = core.ColorBrightRed
	case info.Health <= 60:
		healthColor = core.ColorYellow
	}

	x := 1
	x = hudField(dst, x, fmt.Sprintf("Health: %d", info.Health), healthColor)
	x = hudField(dst, x, fmt.Sprintf("Ammo: %d", info.Ammo), core.ColorBrightYellow)
	x = hudField(dst, x, fmt.Sprintf("Guards: %d", info.GuardsLeft), core.ColorBrightBlue)
	if info.FreezeActive {
		x = hudField(dst, x, fmt.Sprintf("Freeze: %ds", info.FreezeSeconds), core.ColorBrightCyan)
	}
	if info.Muted {
		hudField(dst, x, "[muted]", core.ColorGray)
	}

	timeText := "Time: " + formatClock(info.Elapsed)
	dst.DrawTextColor(dst.Width()-len(timeText)-1, 0, timeText, core.ColorBrightWhite)
}

// hudField draws one HUD entry and returns where the next one starts.
func hudField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColor(x, 0, text, c)
	return x + len([]rune(text)) + 3
}

// renderLevel draws walls and the exit.
func (g *Game) renderLevel(dst *core.Screen) {
	for row := range g.level.H {
		for col := range g.level.W {
			switch {
			case g.level.IsWall(col, row):
				g.fillTile(dst, col, row, WallChar, core.ColorGray)
			case g.level.IsExit(col, row):
				g.fillTile(dst, col, row, ExitChar, core.ColorBrightGreen)
			}
		}
	}
}

// fillTile paints every cell of a tile.
func (g *Game) fillTile(dst *core.Screen, col, row int, r rune, c core.Color) {
	cpt := g.cfg.Grid.CellsPerTile
	y := g.cfg.Grid.HUDRows + row
	for i := range cpt {
		dst.SetColor(col*cpt+i, y, r, c)
	}
}

// cellOf maps a pixel-space box to the screen cell under its center.
func (g *Game) cellOf(r core.Rect) (x, y int) {
	cx, cy := r.Center()
	tileSize := g.cfg.Grid.TileSize
	x = int(math.Floor(cx / tileSize * float64(g.cfg.Grid.CellsPerTile)))
	y = g.cfg.Grid.HUDRows + int(math.Floor(cy/tileSize))
	return x, y
}

// renderPickups draws freeze items and ammo packs.
func (g *Game) renderPickups(dst *core.Screen) {
	for _, item := range g.state.FreezeItems {
		x, y := g.cellOf(item.Rect())
		dst.SetColor(x, y, FreezeChar, core.ColorBrightCyan)
	}
	for _, item := range g.state.AmmoItems {
		x, y := g.cellOf(item.Rect())
		dst.SetColor(x, y, AmmoChar, core.ColorBrightYellow)
	}
}

// renderBullets draws both bullet kinds.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.state.PlayerBullets {
		x, y := g.cellOf(b.Rect())
		dst.SetColor(x, y, PlayerBulletChar, core.ColorYellow)
	}
	for _, b := range g.state.GuardBullets {
		x, y := g.cellOf(b.Rect())
		dst.SetColor(x, y, GuardBulletChar, core.ColorBrightRed)
	}
}

// renderGuards draws guards; frozen ones are tinted, chasing ones are red.
func (g *Game) renderGuards(dst *core.Screen) {
	for _, gd := range g.state.Guards {
		c := core.ColorBrightBlue
		switch {
		case gd.Frozen:
			c = core.ColorCyan
		case gd.State == GuardChase:
			c = core.ColorRed
		}
		x, y := g.cellOf(gd.Rect())
		dst.SetColor(x, y, GuardChar, c)
	}
}

// renderPlayer draws the player facing its direction.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := &g.state.Player
	x, y := g.cellOf(p.Rect())
	dst.SetColor(x, y, playerGlyphs[p.Facing], core.ColorBrightWhite)
}

// renderOverlay draws the end and pause messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.state.Session
	switch {
	case s.Ended() && s.Won:
		title := "ESCAPED! Time: " + formatClock(g.timer.Seconds())
		g.drawCenteredBox(dst, title, "Press R to retry")
	case s.Ended():
		g.drawCenteredBox(dst, "CAUGHT!", "Press R to retry")
	case s.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
