package escape

import (
	"github.com/vovakirdan/prison-escape/internal/core"
)

// PlayerShoot fires a bullet from the player's center in the facing
// direction. It does nothing and returns false when out of ammo.
func PlayerShoot(s *State) bool {
	p := &s.Player
	if p.Ammo <= 0 {
		return false
	}
	p.Ammo--

	bc := s.Cfg.Projectiles.Player
	cx, cy := p.Rect().Center()
	s.PlayerBullets = append(s.PlayerBullets, PlayerBullet{
		X:      cx - bc.Size/2,
		Y:      cy - bc.Size/2,
		Size:   bc.Size,
		Speed:  bc.Speed,
		Damage: bc.Damage,
		Dir:    p.Facing,
	})
	s.emit(core.SoundShoot)
	return true
}

// AdvanceProjectiles moves every bullet and resolves its hits.
// A bullet has at most one effect per tick: the first wall it touches
// destroys it, otherwise the first target it touches takes the damage.
func AdvanceProjectiles(s *State) {
	advancePlayerBullets(s)
	advanceGuardBullets(s)
}

func advancePlayerBullets(s *State) {
	kept := s.PlayerBullets[:0]
	for _, b := range s.PlayerBullets {
		dx, dy := b.Dir.Delta()
		b.X += dx * b.Speed
		b.Y += dy * b.Speed

		if b.Rect().OverlapsAny(s.Walls) {
			continue
		}
		if hitGuard(s, &b) {
			continue
		}
		kept = append(kept, b)
	}
	s.PlayerBullets = kept
}

// hitGuard applies b to the first guard it overlaps and removes the guard
// once its health is gone. It reports whether a guard was hit.
func hitGuard(s *State, b *PlayerBullet) bool {
	box := b.Rect()
	for i, g := range s.Guards {
		if !box.Intersects(g.Rect()) {
			continue
		}
		g.Health -= b.Damage
		if g.Health <= 0 {
			s.Guards = append(s.Guards[:i], s.Guards[i+1:]...)
		}
		return true
	}
	return false
}

func advanceGuardBullets(s *State) {
	kept := s.GuardBullets[:0]
	for i, b := range s.GuardBullets {
		if !s.Session.Running {
			// Caught by an earlier bullet this tick; the rest stay put.
			kept = append(kept, s.GuardBullets[i:]...)
			break
		}

		b.X += b.DX * b.Speed
		b.Y += b.DY * b.Speed

		if b.Rect().OverlapsAny(s.Walls) {
			continue
		}
		if b.Rect().Intersects(s.Player.Rect()) {
			s.Player.Health -= b.Damage
			if s.Player.Health <= 0 {
				s.endSession(false)
			}
			continue
		}
		kept = append(kept, b)
	}
	s.GuardBullets = kept
}
