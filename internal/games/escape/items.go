package escape

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
)

// ErrNoFreeTile is returned when item placement runs out of attempts.
var ErrNoFreeTile = errors.New("no free tile for item")

// PlaceRandomItem picks a random tile strictly inside the border whose
// size x size box touches no wall. It gives up after maxAttempts samples.
func PlaceRandomItem(rng *rand.Rand, walls []core.Rect, mapW, mapH int, tileSize float64,
	kind PickupKind, size float64, amount, maxAttempts int,
) (Pickup, error) {
	if mapW < 3 || mapH < 3 {
		return Pickup{}, fmt.Errorf("%w: %dx%d tiles", ErrMapTooSmall, mapW, mapH)
	}

	for range maxAttempts {
		col := rng.Intn(mapW-2) + 1
		row := rng.Intn(mapH-2) + 1
		box := core.NewRect(float64(col)*tileSize, float64(row)*tileSize, size, size)
		if box.OverlapsAny(walls) {
			continue
		}

		item := Pickup{Kind: kind, X: box.X, Y: box.Y, Size: size}
		if kind == PickupAmmo {
			item.Amount = amount
		}
		return item, nil
	}

	return Pickup{}, fmt.Errorf("%w: %s item after %d attempts on %dx%d map",
		ErrNoFreeTile, kind, maxAttempts, mapW, mapH)
}

// CreatePowerups scatters the freeze items and ammo packs. Items are only
// checked against walls, so two of them may share a tile.
func CreatePowerups(rng *rand.Rand, walls []core.Rect, mapW, mapH int, tileSize float64,
	cfg config.PickupsConfig,
) (freeze, ammo []Pickup, err error) {
	freeze = make([]Pickup, 0, cfg.FreezeCount)
	for range cfg.FreezeCount {
		item, err := PlaceRandomItem(rng, walls, mapW, mapH, tileSize,
			PickupFreeze, cfg.ItemSize, 0, cfg.MaxPlacementAttempts)
		if err != nil {
			return nil, nil, err
		}
		freeze = append(freeze, item)
	}

	ammo = make([]Pickup, 0, cfg.AmmoCount)
	for range cfg.AmmoCount {
		item, err := PlaceRandomItem(rng, walls, mapW, mapH, tileSize,
			PickupAmmo, cfg.ItemSize, cfg.AmmoAmount, cfg.MaxPlacementAttempts)
		if err != nil {
			return nil, nil, err
		}
		ammo = append(ammo, item)
	}

	return freeze, ammo, nil
}
