// component/movement.go
package component

import (
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/utils"
)

// Position — компонент позиции в координатах глобуса
type Position struct {
	goldberg.Vec3
}

// Velocity — множитель скорости волны, в которой враг появился
type Velocity struct {
	SpeedMultiplier float64
}

// Path — маршрут врага: тайлы и их нормали, текущий сегмент и прогресс в нём.
type Path struct {
	Tiles           []goldberg.TileID
	Directions      []goldberg.Vec3
	SegmentIndex    int
	SegmentProgress float64 // [0, 1)
	SegmentDuration float64 // секунды при скорости 1
	SpawnTile       goldberg.TileID
}

// Segments — число сегментов маршрута.
func (p *Path) Segments() int {
	if len(p.Directions) < 2 {
		return 0
	}
	return len(p.Directions) - 1
}

// NormalizedProgress — пройденная доля маршрута в [0, 1].
func (p *Path) NormalizedProgress() float64 {
	segments := p.Segments()
	if segments == 0 {
		return 0
	}
	continuous := float64(p.SegmentIndex) + utils.Clamp(p.SegmentProgress, 0, 1)
	return utils.Clamp(continuous/float64(segments), 0, 1)
}

// CurrentTile — тайл, с которого начинается текущий сегмент.
func (p *Path) CurrentTile() goldberg.TileID {
	if len(p.Tiles) == 0 {
		return goldberg.NoTile
	}
	idx := p.SegmentIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.Tiles)-1 {
		idx = len(p.Tiles) - 1
	}
	return p.Tiles[idx]
}
