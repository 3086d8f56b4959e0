package driver

import (
	"math/rand"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// InputSource produces the input frame for a tick.
type InputSource interface {
	Next(tick uint64) core.InputFrame
}

// IdleInput never presses anything.
type IdleInput struct{}

func (IdleInput) Next(uint64) core.InputFrame {
	return core.NewInputFrame()
}

// ScriptInput replays a fixed list of frames and then goes idle.
type ScriptInput []core.InputFrame

func (s ScriptInput) Next(tick uint64) core.InputFrame {
	if tick >= uint64(len(s)) {
		return core.NewInputFrame()
	}
	return s[tick]
}

var walkDirs = [][]core.Action{
	{core.ActionUp},
	{core.ActionDown},
	{core.ActionLeft},
	{core.ActionRight},
	{core.ActionUp, core.ActionRight},
	{core.ActionDown, core.ActionRight},
	{core.ActionUp, core.ActionLeft},
	{core.ActionDown, core.ActionLeft},
}

// RandomWalk holds a random direction for a random stretch of ticks and
// fires now and then. The same seed yields the same inputs.
type RandomWalk struct {
	rng       *rand.Rand
	current   []core.Action
	remaining int
	minHold   int
	maxHold   int
	shootOdds int // One in shootOdds ticks fires
}

func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{
		rng:       rand.New(rand.NewSource(seed)),
		minHold:   20,
		maxHold:   90,
		shootOdds: 45,
	}
}

func (w *RandomWalk) Next(uint64) core.InputFrame {
	if w.remaining <= 0 {
		w.current = walkDirs[w.rng.Intn(len(walkDirs))]
		w.remaining = w.minHold + w.rng.Intn(w.maxHold-w.minHold+1)
	}
	w.remaining--

	frame := core.FrameOf(w.current...)
	if w.rng.Intn(w.shootOdds) == 0 {
		frame.Set(core.ActionShoot)
	}
	return frame
}
