package escape

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// ErrMapTooSmall is returned when the grid cannot hold a border and an exit.
var ErrMapTooSmall = errors.New("map too small")

// wallLine is an internal wall row or column with passable gaps.
type wallLine struct {
	at   int   // Row index for horizontal lines, column index for vertical ones
	gaps []int // Indices along the line left open
}

// Internal walls. Horizontal rows span columns 2..mapW-3,
// vertical columns span rows 2..mapH-3.
var (
	horizontalWalls = []wallLine{
		{at: 2, gaps: []int{5, 10, 15}},
		{at: 6, gaps: []int{6, 13}},
		{at: 10, gaps: []int{4, 14}},
	}
	verticalWalls = []wallLine{
		{at: 4, gaps: []int{3, 8}},
		{at: 9, gaps: []int{5, 11}},
		{at: 14, gaps: []int{4, 9}},
	}
)

func (l wallLine) isGap(i int) bool {
	for _, g := range l.gaps {
		if g == i {
			return true
		}
	}
	return false
}

type tile struct {
	col, row int
}

// Level is the static layout of one session.
type Level struct {
	W, H  int // Size in tiles
	Tile  float64
	Walls []core.Rect
	Exit  core.Rect

	exitTile tile
	wallSet  map[tile]bool
}

// IsWall reports whether the tile at (col, row) holds a wall.
func (l *Level) IsWall(col, row int) bool {
	return l.wallSet[tile{col, row}]
}

// IsExit reports whether the tile at (col, row) is the exit.
func (l *Level) IsExit(col, row int) bool {
	return l.exitTile == tile{col, row}
}

// BuildMap generates the wall layout and exit for a mapW x mapH tile grid.
// The layout depends only on the dimensions. Every wall tile appears once.
func BuildMap(mapW, mapH int, tileSize float64) (*Level, error) {
	if mapW < 3 || mapH < 3 {
		return nil, fmt.Errorf("%w: %dx%d tiles, need at least 3x3", ErrMapTooSmall, mapW, mapH)
	}

	l := &Level{
		W:        mapW,
		H:        mapH,
		Tile:     tileSize,
		exitTile: tile{mapW - 2, mapH - 2},
		wallSet:  make(map[tile]bool),
	}

	add := func(col, row int) {
		if col < 0 || col >= mapW || row < 0 || row >= mapH {
			return
		}
		t := tile{col, row}
		if t == l.exitTile || l.wallSet[t] {
			return
		}
		l.wallSet[t] = true
		l.Walls = append(l.Walls, l.tileRect(col, row))
	}

	// Outer border
	for col := range mapW {
		add(col, 0)
		add(col, mapH-1)
	}
	for row := range mapH {
		add(0, row)
		add(mapW-1, row)
	}

	// Internal walls with gaps
	for col := 2; col < mapW-2; col++ {
		for _, line := range horizontalWalls {
			if !line.isGap(col) {
				add(col, line.at)
			}
		}
	}
	for row := 2; row < mapH-2; row++ {
		for _, line := range verticalWalls {
			if !line.isGap(row) {
				add(line.at, row)
			}
		}
	}

	// Exit plus the two walls that force the approach
	l.Exit = l.tileRect(l.exitTile.col, l.exitTile.row)
	add(l.exitTile.col-1, l.exitTile.row)
	add(l.exitTile.col-1, l.exitTile.row-1)

	return l, nil
}

// tileRect returns the pixel rectangle covering a tile.
func (l *Level) tileRect(col, row int) core.Rect {
	return core.NewRect(float64(col)*l.Tile, float64(row)*l.Tile, l.Tile, l.Tile)
}
