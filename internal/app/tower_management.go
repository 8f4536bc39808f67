// internal/app/tower_management.go
package app

import (
	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/types"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlaceResult — итог попытки постройки.
type PlaceResult int

const (
	PlaceSuccess PlaceResult = iota
	PlaceAlreadyOccupied
	PlaceInvalidTile
	PlaceBlocksRoutes
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceSuccess:
		return "success"
	case PlaceAlreadyOccupied:
		return "already occupied"
	case PlaceInvalidTile:
		return "invalid tile"
	case PlaceBlocksRoutes:
		return "blocks all routes"
	}
	return "unknown"
}

// PlaceTower attempts to place a tower on the given tile. A rejected placement
// leaves the board untouched; a successful one re-routes every spawn.
func (g *Game) PlaceTower(id goldberg.TileID) PlaceResult {
	result := g.canPlaceTower(id)
	if result != PlaceSuccess {
		logger.Log.WithFields(logrus.Fields{
			"tile":   id,
			"reason": result.String(),
		}).Debug("Tower placement rejected")
		return result
	}

	tile := g.Board.Sphere.Tile(id)
	towerID := g.createTowerEntity(tile)
	g.Board.Sphere.SetOccupied(id, true)
	g.WaveSystem.RecalculateRoutes()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: towerID, Tile: id},
	})
	return PlaceSuccess
}

// BuildOnSelected строит башню на выбранном гексе. Выбор сохраняется, чтобы
// меню показало, что гекс уже занят.
func (g *Game) BuildOnSelected() PlaceResult {
	selected := g.ECS.GameState.Selected
	if selected == goldberg.NoTile {
		return PlaceInvalidTile
	}
	return g.PlaceTower(selected)
}

// ClearTowers сносит все башни и освобождает тайлы.
func (g *Game) ClearTowers() {
	g.ECS.ClearTowers()
	g.ECS.ClearShots()
	g.Board.Sphere.ClearOccupancy()
	g.WaveSystem.RecalculateRoutes()
}

func (g *Game) canPlaceTower(id goldberg.TileID) PlaceResult {
	if g.ECS.GameState.Outcome != component.OutcomeNone {
		return PlaceInvalidTile
	}
	tile := g.Board.Sphere.Tile(id)
	if tile == nil || !tile.IsHexagon() {
		return PlaceInvalidTile
	}
	if tile.Occupied || g.ECS.TowerOnTile(id) != 0 {
		return PlaceAlreadyOccupied
	}
	if g.options.ProtectRoutes && g.isPathBlockedBy(id) {
		return PlaceBlocksRoutes
	}
	return PlaceSuccess
}

// isPathBlockedBy временно занимает тайл и проверяет, остался ли хоть один
// маршрут от спавна до цели.
func (g *Game) isPathBlockedBy(id goldberg.TileID) bool {
	sphere := g.Board.Sphere
	sphere.SetOccupied(id, true)
	defer sphere.SetOccupied(id, false)

	for _, spawn := range g.Board.Spawns {
		if _, err := goldberg.FindPath(g.Board.Graph, spawn, g.Board.Target, sphere); err == nil {
			return false
		}
	}
	return true
}

func (g *Game) createTowerEntity(tile *goldberg.Tile) types.EntityID {
	def := g.Tower
	id := g.ECS.NewEntity()

	height := g.Board.Sphere.Thickness * def.HeightFactor
	g.ECS.Positions[id] = &component.Position{Vec3: g.Board.TowerPosition(tile, height)}
	g.ECS.Towers[id] = &component.Tower{
		DefID:  def.ID,
		Tile:   tile.ID,
		Range:  goldberg.TilesWithinHops(g.Board.Graph, tile.ID, def.RangeHexes),
		Height: height,
		Radius: g.Board.Sphere.BaseHexRadius() * def.RadiusFactor,
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:       def.Damage,
		FireInterval: def.FireInterval,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.TowerColor,
		Radius:    g.ECS.Towers[id].Radius,
		HasStroke: true,
	}

	logger.Log.WithFields(logrus.Fields{
		"tower": id,
		"tile":  tile.ID,
		"range": len(g.ECS.Towers[id].Range),
	}).Debug("Tower placed")
	return id
}
