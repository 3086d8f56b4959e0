package escape

import (
	"math"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// UpdateGuards runs one tick of every guard's state machine.
// Frozen guards are skipped entirely and keep their stored state.
func UpdateGuards(s *State) {
	for _, g := range s.Guards {
		if g.Frozen {
			continue
		}
		updateGuard(s, g)
	}
}

func updateGuard(s *State, g *Guard) {
	if g.Cooldown > 0 {
		g.Cooldown--
	}

	p := &s.Player
	dist := core.Distance(g.X, g.Y, p.X, p.Y)
	if dist < g.DetectionRange {
		g.State = GuardChase
	} else {
		g.State = GuardPatrol
	}

	switch g.State {
	case GuardChase:
		if dist < g.DetectionRange*s.Cfg.Guards.FireRangeRatio && g.Cooldown == 0 {
			if guardFire(s, g) {
				g.Cooldown = g.MaxCooldown
			}
		}
		if dist > 0 {
			moveGuard(g, (p.X-g.X)/dist, (p.Y-g.Y)/dist, g.Speed, s.Walls)
		}

	case GuardPatrol:
		target := g.Target()
		pd := core.Distance(g.X, g.Y, target.X, target.Y)
		if pd < s.Cfg.Guards.WaypointRadius {
			g.TargetB = !g.TargetB
		}
		// This tick still heads for the anchor just reached.
		if pd > 0 {
			moveGuard(g, (target.X-g.X)/pd, (target.Y-g.Y)/pd, g.Speed*s.Cfg.Guards.PatrolSpeedRatio, s.Walls)
		}
	}
}

// guardFire shoots from the guard's center at the player's center.
// It reports false when the centers coincide and there is no direction.
func guardFire(s *State, g *Guard) bool {
	gx, gy := g.Rect().Center()
	px, py := s.Player.Rect().Center()
	dx, dy := px-gx, py-gy
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}

	bc := s.Cfg.Projectiles.Guard
	s.GuardBullets = append(s.GuardBullets, GuardBullet{
		X:      gx - bc.Size/2,
		Y:      gy - bc.Size/2,
		Size:   bc.Size,
		Speed:  bc.Speed,
		Damage: bc.Damage,
		DX:     dx / length,
		DY:     dy / length,
	})
	return true
}

// moveGuard steps the guard along the unit vector (dirX, dirY) with the
// same axis-split wall resolution as the player and updates its facing.
func moveGuard(g *Guard, dirX, dirY, speed float64, walls []core.Rect) {
	g.X, g.Y = slide(g.Rect(), g.X+dirX*speed, g.Y+dirY*speed, walls)
	g.Facing = facingOf(dirX, dirY)
}

// facingOf picks the dominant axis of a movement vector. Horizontal wins ties.
func facingOf(dx, dy float64) Dir {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}
