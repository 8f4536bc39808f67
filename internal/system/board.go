// internal/system/board.go
package system

import (
	"math"

	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/goldberg"
)

// Board — неизменяемая на время партии геометрия: тайлы, граф, цель и спавны.
type Board struct {
	Sphere *goldberg.Sphere
	Graph  *goldberg.Graph
	Target goldberg.TileID
	Spawns []goldberg.TileID
}

// EnemyRadius — радиус врага, доля от радиуса обычного гекса.
func (b *Board) EnemyRadius() float64 {
	return b.Sphere.BaseHexRadius() * config.EnemyBaseRadiusFactor
}

// TravelRadius — расстояние от центра глобуса, на котором летят враги:
// над верхней гранью тайлов с небольшим зазором.
func (b *Board) TravelRadius() float64 {
	offset := math.Max(
		b.Sphere.Thickness*config.EnemyMinSurfaceOffset,
		b.EnemyRadius()*config.EnemySurfaceOffset,
	)
	return b.Sphere.Radius + b.Sphere.Thickness + offset
}

// TowerPosition — точка центра башни на тайле.
func (b *Board) TowerPosition(tile *goldberg.Tile, towerHeight float64) goldberg.Vec3 {
	return tile.SurfacePoint(b.Sphere.Thickness*0.5 + towerHeight*0.5)
}
