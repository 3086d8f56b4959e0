package config

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Validate reports every problem in the configuration at once.
func (c *EscapeConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Grid.Validate())
	el.Add(c.Player.Validate(c.Grid.TileSize))
	el.Add(c.Projectiles.Validate())
	el.Add(c.Guards.Validate())
	el.Add(c.Pickups.Validate(c.Grid.TileSize))
	el.Add(c.Effects.Validate())
	el.Add(c.Input.Validate())

	return el.Err()
}

func (c *GridConfig) Validate() error {
	el := errors.NewErrorList()

	if c.TileSize <= 0 {
		el.Add(fmt.Errorf("grid.tile_size must be positive"))
	}
	if c.CellsPerTile < 1 {
		el.Add(fmt.Errorf("grid.cells_per_tile must be at least 1"))
	}
	if c.HUDRows < 0 {
		el.Add(fmt.Errorf("grid.hud_rows must not be negative"))
	}
	if c.MinWidth < 3 || c.MinHeight < 3 {
		el.Add(fmt.Errorf("grid.min_width and grid.min_height must be at least 3"))
	}

	return el.Err()
}

func (c *PlayerConfig) Validate(tileSize float64) error {
	el := errors.NewErrorList()

	if c.Width <= 0 || c.Height <= 0 {
		el.Add(fmt.Errorf("player size must be positive"))
	}
	if tileSize > 0 && (c.Width > tileSize || c.Height > tileSize) {
		el.Add(fmt.Errorf("player must fit in one tile (%.0f px)", tileSize))
	}
	if c.Speed <= 0 {
		el.Add(fmt.Errorf("player.speed must be positive"))
	}
	if c.Health <= 0 {
		el.Add(fmt.Errorf("player.health must be positive"))
	}
	if c.Ammo < 0 {
		el.Add(fmt.Errorf("player.ammo must not be negative"))
	}

	return el.Err()
}

func (c *ProjectileConfig) Validate() error {
	el := errors.NewErrorList()

	if err := c.Player.Validate(); err != nil {
		el.Add(fmt.Errorf("projectiles.player: %w", err))
	}
	if err := c.Guard.Validate(); err != nil {
		el.Add(fmt.Errorf("projectiles.guard: %w", err))
	}

	return el.Err()
}

func (c *BulletConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Size <= 0 {
		el.Add(fmt.Errorf("size must be positive"))
	}
	if c.Speed <= 0 {
		el.Add(fmt.Errorf("speed must be positive"))
	}
	if c.Damage < 0 {
		el.Add(fmt.Errorf("damage must not be negative"))
	}

	return el.Err()
}

func (c *GuardsConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Width <= 0 || c.Height <= 0 {
		el.Add(fmt.Errorf("guard size must be positive"))
	}
	if c.FireRangeRatio <= 0 || c.FireRangeRatio > 1 {
		el.Add(fmt.Errorf("guards.fire_range_ratio must be in (0, 1]"))
	}
	if c.PatrolSpeedRatio <= 0 || c.PatrolSpeedRatio > 1 {
		el.Add(fmt.Errorf("guards.patrol_speed_ratio must be in (0, 1]"))
	}
	if c.WaypointRadius <= 0 {
		el.Add(fmt.Errorf("guards.waypoint_radius must be positive"))
	}

	for i, g := range c.Roster {
		if err := g.Validate(); err != nil {
			el.Add(fmt.Errorf("guard %d: %w", i, err))
		}
	}

	return el.Err()
}

func (c *GuardDef) Validate() error {
	el := errors.NewErrorList()

	if c.Speed <= 0 {
		el.Add(fmt.Errorf("speed must be positive"))
	}
	if c.Health <= 0 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if c.Cooldown < 0 {
		el.Add(fmt.Errorf("cooldown must not be negative"))
	}
	if c.DetectionRange <= 0 {
		el.Add(fmt.Errorf("detection_range must be positive"))
	}

	return el.Err()
}

func (c *PickupsConfig) Validate(tileSize float64) error {
	el := errors.NewErrorList()

	if c.ItemSize <= 0 {
		el.Add(fmt.Errorf("pickups.item_size must be positive"))
	}
	if tileSize > 0 && c.ItemSize > tileSize {
		el.Add(fmt.Errorf("pickups.item_size must fit in one tile (%.0f px)", tileSize))
	}
	if c.FreezeCount < 0 || c.AmmoCount < 0 {
		el.Add(fmt.Errorf("pickup counts must not be negative"))
	}
	if c.AmmoAmount < 0 {
		el.Add(fmt.Errorf("pickups.ammo_amount must not be negative"))
	}
	if c.MaxPlacementAttempts < 1 {
		el.Add(fmt.Errorf("pickups.max_placement_attempts must be at least 1"))
	}

	return el.Err()
}

func (c *EffectsConfig) Validate() error {
	if c.FreezeDuration < 1 {
		return fmt.Errorf("effects.freeze_duration must be at least 1 tick")
	}
	return nil
}

func (c *InputConfig) Validate() error {
	if c.HoldMillis < 1 {
		return fmt.Errorf("input.hold_ms must be at least 1")
	}
	return nil
}
