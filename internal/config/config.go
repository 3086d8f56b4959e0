// Package config provides YAML-based game configuration loading and
// validation for the escape game.
package config

// EscapeConfig contains all configuration for the escape game.
type EscapeConfig struct {
	Grid        GridConfig       `yaml:"grid"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Guards      GuardsConfig     `yaml:"guards"`
	Pickups     PickupsConfig    `yaml:"pickups"`
	Effects     EffectsConfig    `yaml:"effects"`
	Input       InputConfig      `yaml:"input"`
}

// GridConfig defines the tile grid and how it maps onto the terminal.
type GridConfig struct {
	TileSize     float64 `yaml:"tile_size"`      // Tile edge in simulation pixels
	CellsPerTile int     `yaml:"cells_per_tile"` // Terminal columns drawn per tile
	HUDRows      int     `yaml:"hud_rows"`       // Rows reserved above the map
	MinWidth     int     `yaml:"min_width"`      // Smallest playable map width in tiles
	MinHeight    int     `yaml:"min_height"`     // Smallest playable map height in tiles
}

// PlayerConfig defines the player's body and starting stats.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per tick
	Health int     `yaml:"health"`
	Ammo   int     `yaml:"ammo"`
	Start  TilePos `yaml:"start"`
}

// BulletConfig defines one kind of projectile.
type BulletConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"` // Pixels per tick
	Damage int     `yaml:"damage"`
}

// ProjectileConfig holds the player and guard bullet settings.
type ProjectileConfig struct {
	Player BulletConfig `yaml:"player"`
	Guard  BulletConfig `yaml:"guard"`
}

// GuardsConfig defines guard bodies, AI tuning and the spawn roster.
type GuardsConfig struct {
	Width            float64    `yaml:"width"`
	Height           float64    `yaml:"height"`
	FireRangeRatio   float64    `yaml:"fire_range_ratio"`   // Fraction of detection range inside which guards shoot
	PatrolSpeedRatio float64    `yaml:"patrol_speed_ratio"` // Fraction of speed used while patrolling
	WaypointRadius   float64    `yaml:"waypoint_radius"`    // Distance at which a patrol anchor counts as reached
	Roster           []GuardDef `yaml:"roster"`
}

// GuardDef is one row of the guard table.
type GuardDef struct {
	Spawn          TilePos `yaml:"spawn"`
	PatrolA        TilePos `yaml:"patrol_a"`
	PatrolB        TilePos `yaml:"patrol_b"`
	Speed          float64 `yaml:"speed"`
	Health         int     `yaml:"health"`
	Cooldown       int     `yaml:"cooldown"`        // Ticks between shots
	DetectionRange float64 `yaml:"detection_range"` // In tiles
}

// TilePos is a tile coordinate. Negative values count from the far edge
// of the map, so -2 on a 40-tile-wide map is column 38.
type TilePos struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Resolve returns the absolute tile coordinate for a map of the given size.
func (p TilePos) Resolve(mapW, mapH int) (col, row int) {
	col, row = p.Col, p.Row
	if col < 0 {
		col += mapW
	}
	if row < 0 {
		row += mapH
	}
	return col, row
}

// PickupsConfig defines the items scattered over the map.
type PickupsConfig struct {
	ItemSize             float64 `yaml:"item_size"`
	FreezeCount          int     `yaml:"freeze_count"`
	AmmoCount            int     `yaml:"ammo_count"`
	AmmoAmount           int     `yaml:"ammo_amount"`
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
}

// EffectsConfig defines timed effects.
type EffectsConfig struct {
	FreezeDuration int `yaml:"freeze_duration"` // Ticks
}

// InputConfig tunes the terminal input collaborator.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // How long a movement key stays held after its last key event
}
