package escape

import (
	"github.com/vovakirdan/prison-escape/internal/core"
)

// ResolvePickups collects every item the player overlaps and checks the exit.
func ResolvePickups(s *State) {
	body := s.Player.Rect()

	kept := s.FreezeItems[:0]
	for _, item := range s.FreezeItems {
		if body.Intersects(item.Rect()) {
			activateFreeze(s)
			continue
		}
		kept = append(kept, item)
	}
	s.FreezeItems = kept

	kept = s.AmmoItems[:0]
	for _, item := range s.AmmoItems {
		if body.Intersects(item.Rect()) {
			s.Player.Ammo += item.Amount
			continue
		}
		kept = append(kept, item)
	}
	s.AmmoItems = kept

	if s.Session.Running && body.Intersects(s.Exit) {
		s.endSession(true)
		s.emit(core.SoundEscape)
	}
}

// activateFreeze (re)starts the freeze at full duration and freezes every guard.
func activateFreeze(s *State) {
	s.Freeze.Active = true
	s.Freeze.Duration = s.Freeze.MaxDuration
	for _, g := range s.Guards {
		g.Frozen = true
	}
}

// DecayFreeze counts the freeze down by one tick. When it runs out every
// guard is unfrozen, whatever froze it.
func DecayFreeze(s *State) {
	if !s.Freeze.Active {
		return
	}
	s.Freeze.Duration--
	if s.Freeze.Duration <= 0 {
		s.Freeze.Duration = 0
		s.Freeze.Active = false
		for _, g := range s.Guards {
			g.Frozen = false
		}
	}
}
