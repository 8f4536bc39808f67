// pkg/render/color.go
package render

import (
	"image/color"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/utils"
)

// Palette holds all the colors needed to render the globe.
type Palette struct {
	Background     color.RGBA
	HexFill        color.RGBA
	HexBorder      color.RGBA
	PentagonFill   color.RGBA
	PentagonBorder color.RGBA
	HoverBorder    color.RGBA
	ActiveFill     color.RGBA
	Spawn          color.RGBA
	Target         color.RGBA
	Path           color.RGBA
	Tower          color.RGBA
	TowerBorder    color.RGBA
	Enemy          color.RGBA
	Shot           color.RGBA
	Halo           color.RGBA
	StrokeWidth    float32
}

func DefaultPalette() Palette {
	return Palette{
		Background:     config.BackgroundColor,
		HexFill:        config.HexFillColor,
		HexBorder:      config.HexBorderColor,
		PentagonFill:   config.PentagonFillColor,
		PentagonBorder: config.PentagonBorderColor,
		HoverBorder:    config.HoverBorderColor,
		ActiveFill:     config.ActiveHexFillColor,
		Spawn:          config.RouteSpawnColor,
		Target:         config.RouteTargetColor,
		Path:           config.RoutePathColor,
		Tower:          config.TowerColor,
		TowerBorder:    config.TowerBorderColor,
		Enemy:          config.EnemyColor,
		Shot:           config.ShotColor,
		Halo:           config.HaloColor,
		StrokeWidth:    1.2,
	}
}

// TileColors выбирает заливку и обводку тайла. Порядок приоритетов:
// выбор, роль в маршруте, тип тайла; наведение меняет только обводку.
func (p Palette) TileColors(tile *goldberg.Tile, role component.RouteRole, selected, hovered bool) (fill, border color.RGBA) {
	fill, border = p.HexFill, p.HexBorder
	if tile.IsPentagon() {
		fill, border = p.PentagonFill, p.PentagonBorder
	}
	switch role {
	case component.RoleTarget:
		fill = p.Target
	case component.RoleSpawn:
		fill = p.Spawn
	case component.RolePath:
		fill = p.Path
	}
	if selected {
		fill = p.ActiveFill
	}
	if hovered {
		border = p.HoverBorder
	}
	return fill, border
}

// Shade умножает яркость цвета на k в [0, 1].
func Shade(c color.RGBA, k float64) color.RGBA {
	return utils.Shade(c, k)
}

// WithAlpha задаёт прозрачность; RGB премультиплицируются, как ждёт ebiten.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = utils.Clamp(a, 0, 1)
	shaded := utils.Shade(c, a)
	shaded.A = uint8(float64(c.A) * a)
	return shaded
}
