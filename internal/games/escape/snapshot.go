package escape

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a read-only copy of the session for renderers and
// determinism checks.
type Snapshot struct {
	Tick    uint64
	Status  string
	Player  Player
	Guards  []Guard
	Bullets []PlayerBullet
	Shots   []GuardBullet
	Freeze  FreezeEffect
	Items   []Pickup // Freeze items followed by ammo packs
}

// Snapshot returns a deep copy of the current session.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	s := g.state

	guards := make([]Guard, len(s.Guards))
	for i, gd := range s.Guards {
		guards[i] = *gd
	}

	items := make([]Pickup, 0, len(s.FreezeItems)+len(s.AmmoItems))
	items = append(items, s.FreezeItems...)
	items = append(items, s.AmmoItems...)

	return Snapshot{
		Tick:    s.Session.Tick,
		Status:  g.status(),
		Player:  s.Player,
		Guards:  guards,
		Bullets: append([]PlayerBullet(nil), s.PlayerBullets...),
		Shots:   append([]GuardBullet(nil), s.GuardBullets...),
		Freeze:  s.Freeze,
		Items:   items,
	}
}

// Hash returns an FNV-1a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(snap.Tick)
	h.Write([]byte(snap.Status))

	p := snap.Player
	putF(p.X)
	putF(p.Y)
	putI(p.Health)
	putI(p.Ammo)
	putI(int(p.Facing))

	putI(len(snap.Guards))
	for _, g := range snap.Guards {
		putF(g.X)
		putF(g.Y)
		putI(g.Health)
		putI(g.Cooldown)
		putI(int(g.State))
		putB(g.TargetB)
		putB(g.Frozen)
		putI(int(g.Facing))
	}

	putI(len(snap.Bullets))
	for _, b := range snap.Bullets {
		putF(b.X)
		putF(b.Y)
		putI(int(b.Dir))
	}

	putI(len(snap.Shots))
	for _, b := range snap.Shots {
		putF(b.X)
		putF(b.Y)
		putF(b.DX)
		putF(b.DY)
	}

	putB(snap.Freeze.Active)
	putI(snap.Freeze.Duration)

	putI(len(snap.Items))
	for _, it := range snap.Items {
		putI(int(it.Kind))
		putF(it.X)
		putF(it.Y)
		putI(it.Amount)
	}

	return h.Sum64()
}
