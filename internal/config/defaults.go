package config

import (
	_ "embed"
)

//go:embed defaults/escape.yaml
var defaultEscapeYAML []byte

// DefaultEscapeConfig returns the default escape game configuration.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		Grid: GridConfig{
			TileSize:     40,
			CellsPerTile: 2,
			HUDRows:      1,
			MinWidth:     22,
			MinHeight:    14,
		},
		Player: PlayerConfig{
			Width:  35,
			Height: 35,
			Speed:  1.5,
			Health: 100,
			Ammo:   10,
			Start:  TilePos{Col: 1, Row: 1},
		},
		Projectiles: ProjectileConfig{
			Player: BulletConfig{Size: 4, Speed: 8, Damage: 10},
			Guard:  BulletConfig{Size: 4, Speed: 6, Damage: 10},
		},
		Guards: GuardsConfig{
			Width:            36,
			Height:           36,
			FireRangeRatio:   0.7,
			PatrolSpeedRatio: 0.5,
			WaypointRadius:   5,
			Roster:           DefaultRoster(),
		},
		Pickups: PickupsConfig{
			ItemSize:             20,
			FreezeCount:          3,
			AmmoCount:            5,
			AmmoAmount:           5,
			MaxPlacementAttempts: 10000,
		},
		Effects: EffectsConfig{
			FreezeDuration: 120, // 2 seconds at 60 FPS
		},
		Input: InputConfig{
			HoldMillis: 180,
		},
	}
}

// DefaultRoster returns the ten-guard table. The last three rows are
// anchored to the bottom-right corner so they follow the map size.
func DefaultRoster() []GuardDef {
	row := func(sc, sr, ac, ar, bc, br int, speed float64, health, cooldown int, detection float64) GuardDef {
		return GuardDef{
			Spawn:          TilePos{Col: sc, Row: sr},
			PatrolA:        TilePos{Col: ac, Row: ar},
			PatrolB:        TilePos{Col: bc, Row: br},
			Speed:          speed,
			Health:         health,
			Cooldown:       cooldown,
			DetectionRange: detection,
		}
	}

	return []GuardDef{
		row(6, 1, 6, 1, 10, 1, 0.6, 30, 100, 5),
		row(15, 1, 15, 1, 20, 1, 0.6, 30, 100, 5),
		row(9, 5, 5, 5, 13, 5, 0.6, 30, 100, 5),
		row(15, 4, 15, 1, 15, 5, 0.6, 30, 100, 5),
		row(13, 9, 13, 3, 13, 9, 0.6, 30, 100, 5),
		row(4, 8, 1, 8, 8, 8, 0.6, 30, 100, 5),
		row(3, 5, 3, 3, 3, 5, 0.6, 40, 100, 5),
		row(-2, -10, -2, -13, -2, -8, 0.7, 40, 90, 7),
		row(-2, -3, -2, -5, -2, -3, 0.7, 40, 90, 7),
		row(-5, -5, -7, -6, -5, -6, 0.8, 40, 80, 7),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultEscapeYAML
}
