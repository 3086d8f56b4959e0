package escape

import (
	"github.com/vovakirdan/prison-escape/internal/config"
)

// BuildGuards creates one guard per roster row. Roster coordinates are tiles;
// negative ones count from the far edge of the map.
// Every guard starts patrolling towards PatrolB, unfrozen, facing left.
func BuildGuards(cfg config.GuardsConfig, mapW, mapH int, tileSize float64) []*Guard {
	at := func(p config.TilePos) Point {
		col, row := p.Resolve(mapW, mapH)
		return Point{X: float64(col) * tileSize, Y: float64(row) * tileSize}
	}

	guards := make([]*Guard, 0, len(cfg.Roster))
	for _, def := range cfg.Roster {
		spawn := at(def.Spawn)
		guards = append(guards, &Guard{
			X:              spawn.X,
			Y:              spawn.Y,
			W:              cfg.Width,
			H:              cfg.Height,
			Speed:          def.Speed,
			Health:         def.Health,
			Cooldown:       0,
			MaxCooldown:    def.Cooldown,
			State:          GuardPatrol,
			PatrolA:        at(def.PatrolA),
			PatrolB:        at(def.PatrolB),
			TargetB:        true,
			DetectionRange: def.DetectionRange * tileSize,
			Frozen:         false,
			Facing:         DirLeft,
		})
	}
	return guards
}
