// internal/defs/towers.go
package defs

import "go-globe-defense/internal/config"

// TowerDefinition holds the static data for a tower kind.
type TowerDefinition struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	RangeHexes   int     `json:"range_hexes"`
	Damage       float64 `json:"damage"`
	FireInterval float64 `json:"fire_interval"`
	ShotLifetime float64 `json:"shot_lifetime"`
	HeightFactor float64 `json:"height_factor"`
	RadiusFactor float64 `json:"radius_factor"`
}

// BasicTower is the only buildable tower.
var BasicTower = TowerDefinition{
	ID:           "TOWER_BASIC",
	Name:         "Pulse Tower",
	RangeHexes:   config.TowerRangeHexes,
	Damage:       config.TowerDamagePerShot,
	FireInterval: config.TowerFireInterval,
	ShotLifetime: config.ShotLifetime,
	HeightFactor: config.TowerHeightFactor,
	RadiusFactor: config.TowerRadiusFactor,
}
