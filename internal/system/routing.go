// internal/system/routing.go
package system

import (
	"math"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/utils"
)

// maxCarriedProgress не даёт перенесённому прогрессу дойти до конца сегмента,
// иначе враг перескочил бы сегмент без отрисовки.
const maxCarriedProgress = 0.999

// SegmentDuration — время прохождения сегмента idx при скорости 1:
// дуга между направлениями, делённая на угловую скорость, но не меньше minInterval.
func SegmentDuration(dirs []goldberg.Vec3, idx int, minInterval float64) float64 {
	if idx < 0 || idx+1 >= len(dirs) {
		return minInterval
	}
	arc := dirs[idx].AngleTo(dirs[idx+1])
	if math.IsNaN(arc) || math.IsInf(arc, 0) || arc <= 0 {
		return minInterval
	}
	return math.Max(arc/config.EnemyTravelAngularSpeed, minInterval)
}

// PathPosition — точка на маршруте: сферическая интерполяция внутри текущего
// сегмента, поднятая на radius.
func PathPosition(path *component.Path, radius float64) goldberg.Vec3 {
	if len(path.Directions) == 0 {
		return goldberg.Vec3{}
	}
	idx := path.SegmentIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(path.Directions)-1 {
		idx = len(path.Directions) - 1
	}
	start := path.Directions[idx]
	end := start
	if idx+1 < len(path.Directions) {
		end = path.Directions[idx+1]
	}
	dir := start.Slerp(end, utils.Clamp(path.SegmentProgress, 0, 1))
	if dir.LenSq() == 0 {
		dir = start
	}
	return dir.Normalize().Scale(radius)
}

// AssignRoute переводит врага на новый маршрут, сохраняя нормированный прогресс:
// (индекс + доля) / число сегментов старого маршрута переносится на новый.
// Маршрут короче двух тайлов игнорируется.
func AssignRoute(path *component.Path, tiles []goldberg.TileID, dirs []goldberg.Vec3, spawn goldberg.TileID, minInterval float64) bool {
	segmentsNew := len(dirs) - 1
	if len(tiles) < 2 || segmentsNew <= 0 {
		return false
	}

	segmentsOld := len(path.Directions) - 1
	if segmentsOld < 1 {
		segmentsOld = 1
	}
	continuous := float64(path.SegmentIndex) + utils.Clamp(path.SegmentProgress, 0, 1)
	previous := utils.Clamp(continuous/float64(segmentsOld), 0, 1)

	position := previous * float64(segmentsNew)
	index := int(math.Floor(position))
	if index > segmentsNew-1 {
		index = segmentsNew - 1
	}
	if index < 0 {
		index = 0
	}

	path.Tiles = tiles
	path.Directions = dirs
	path.SegmentIndex = index
	path.SegmentProgress = utils.Clamp(position-float64(index), 0, maxCarriedProgress)
	path.SegmentDuration = SegmentDuration(dirs, index, minInterval)
	path.SpawnTile = spawn
	return true
}
