package escape

import (
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
)

// Dir is a discrete facing direction.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction.
func (d Dir) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// GuardState is the behaviour a guard is in.
type GuardState int

const (
	GuardPatrol GuardState = iota // Ping-pong between two anchors
	GuardChase                    // Pursue the player and shoot when close
)

// String returns the state name.
func (s GuardState) String() string {
	switch s {
	case GuardPatrol:
		return "patrol"
	case GuardChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Player is the escaping prisoner.
type Player struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Health int
	Ammo   int
	Facing Dir
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Guard is one patrolling guard.
type Guard struct {
	X, Y           float64
	W, H           float64
	Speed          float64
	Health         int
	Cooldown       int // Ticks until the guard may fire again
	MaxCooldown    int
	State          GuardState
	PatrolA        Point
	PatrolB        Point
	TargetB        bool    // Heading to PatrolB (otherwise PatrolA)
	DetectionRange float64 // Pixels
	Frozen         bool
	Facing         Dir
}

// Rect returns the guard's bounding box.
func (g *Guard) Rect() core.Rect {
	return core.NewRect(g.X, g.Y, g.W, g.H)
}

// Target returns the patrol anchor the guard is heading to.
func (g *Guard) Target() Point {
	if g.TargetB {
		return g.PatrolB
	}
	return g.PatrolA
}

// PlayerBullet travels along a discrete direction.
type PlayerBullet struct {
	X, Y   float64
	Size   float64
	Speed  float64
	Damage int
	Dir    Dir
}

// Rect returns the bullet's bounding box.
func (b *PlayerBullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// GuardBullet travels along a normalized vector.
type GuardBullet struct {
	X, Y   float64
	Size   float64
	Speed  float64
	Damage int
	DX, DY float64
}

// Rect returns the bullet's bounding box.
func (b *GuardBullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// PickupKind distinguishes collectible items.
type PickupKind int

const (
	PickupFreeze PickupKind = iota // Freezes every guard
	PickupAmmo                     // Restocks ammo
)

// String returns the pickup kind name.
func (k PickupKind) String() string {
	switch k {
	case PickupFreeze:
		return "freeze"
	case PickupAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// Pickup is a collectible lying on the map.
type Pickup struct {
	Kind   PickupKind
	X, Y   float64
	Size   float64
	Amount int // Ammo restocked; unused for freeze items
}

// Rect returns the pickup's bounding box.
func (p *Pickup) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// FreezeEffect is the global guard freeze.
type FreezeEffect struct {
	Active      bool
	Duration    int // Remaining ticks
	MaxDuration int
}

// Session holds the run/pause/outcome flags.
type Session struct {
	Running bool
	Paused  bool
	Won     bool
	Tick    uint64
}

// Ended reports whether the session reached a win or a loss.
func (s Session) Ended() bool {
	return !s.Running
}

// State is everything one session mutates. Every subsystem takes it explicitly.
type State struct {
	Cfg config.EscapeConfig

	MapW, MapH int
	Tile       float64

	Walls []core.Rect
	Exit  core.Rect

	Player        Player
	Guards        []*Guard
	PlayerBullets []PlayerBullet
	GuardBullets  []GuardBullet
	FreezeItems   []Pickup
	AmmoItems     []Pickup
	Freeze        FreezeEffect
	Session       Session

	cues []core.Sound
}

// emit queues a sound cue for the audio collaborator.
func (s *State) emit(c core.Sound) {
	s.cues = append(s.cues, c)
}

// DrainCues returns and clears the cues emitted since the last call.
func (s *State) DrainCues() []core.Sound {
	cues := s.cues
	s.cues = nil
	return cues
}

// endSession stops the session with the given outcome.
func (s *State) endSession(won bool) {
	s.Session.Running = false
	s.Session.Won = won
}
