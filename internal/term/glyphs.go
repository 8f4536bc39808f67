// internal/term/glyphs.go
package term

import (
	"image/color"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// Символы клеток; только ASCII, чтобы глобус читался в любом терминале.
const (
	GlyphHexagon  = '.'
	GlyphPentagon = 'o'
	GlyphSpawn    = 'S'
	GlyphTarget   = '@'
	GlyphPath     = '+'
	GlyphSelected = '#'
	GlyphTower    = 'T'
	GlyphEnemy    = 'e'
	GlyphShot     = '*'
)

// Glyph выбирает символ и цвет клетки тайла с учётом освещения light в [0, 1].
func Glyph(tile *goldberg.Tile, role component.RouteRole, selected, hovered bool, light float64) (rune, tcell.Style) {
	r, fg := rune(GlyphHexagon), config.HexBorderColor
	if tile.IsPentagon() {
		r, fg = GlyphPentagon, config.PentagonFillColor
	}
	switch role {
	case component.RoleTarget:
		r, fg = GlyphTarget, config.RouteTargetColor
	case component.RoleSpawn:
		r, fg = GlyphSpawn, config.RouteSpawnColor
	case component.RolePath:
		r, fg = GlyphPath, config.RoutePathColor
	}
	if selected {
		r, fg = GlyphSelected, config.ActiveHexFillColor
	}

	style := tcell.StyleDefault.
		Foreground(rgb(utils.Shade(fg, light))).
		Background(rgb(utils.Shade(config.HexFillColor, light*0.6)))
	if hovered {
		style = style.Reverse(true)
	}
	return r, style
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
