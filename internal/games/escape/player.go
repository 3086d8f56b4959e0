package escape

import (
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
)

// NewPlayer places a fresh player on its start tile.
func NewPlayer(cfg config.PlayerConfig, mapW, mapH int, tileSize float64) Player {
	col, row := cfg.Start.Resolve(mapW, mapH)
	return Player{
		X:      float64(col) * tileSize,
		Y:      float64(row) * tileSize,
		W:      cfg.Width,
		H:      cfg.Height,
		Speed:  cfg.Speed,
		Health: cfg.Health,
		Ammo:   cfg.Ammo,
		Facing: DirRight,
	}
}

// MovePlayer applies the held movement keys. Opposite keys cancel out,
// while facing follows the last held key in up, down, left, right order.
func MovePlayer(p *Player, in core.InputFrame, walls []core.Rect) {
	newX, newY := p.X, p.Y

	if in.Has(core.ActionUp) {
		newY -= p.Speed
		p.Facing = DirUp
	}
	if in.Has(core.ActionDown) {
		newY += p.Speed
		p.Facing = DirDown
	}
	if in.Has(core.ActionLeft) {
		newX -= p.Speed
		p.Facing = DirLeft
	}
	if in.Has(core.ActionRight) {
		newX += p.Speed
		p.Facing = DirRight
	}

	p.X, p.Y = slide(p.Rect(), newX, newY, walls)
}

// slide resolves a move of body to (newX, newY) one axis at a time.
// Each axis is kept only if the box moved along that axis alone hits no wall,
// which lets bodies slide along walls on diagonal moves.
func slide(body core.Rect, newX, newY float64, walls []core.Rect) (x, y float64) {
	x, y = body.X, body.Y
	if !body.At(newX, body.Y).OverlapsAny(walls) {
		x = newX
	}
	if !body.At(body.X, newY).OverlapsAny(walls) {
		y = newY
	}
	return x, y
}
