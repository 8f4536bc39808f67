// internal/ui/build_menu.go
package ui

import (
	"image"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buildMenuWidth  = 280
	buildMenuHeight = 90
)

// BuildMenu — панель постройки: подсказка и кнопка «Build Tower».
type BuildMenu struct {
	Rect   image.Rectangle
	Prompt string
	Button *Button
}

func NewBuildMenu(x, y int) *BuildMenu {
	rect := image.Rect(x, y, x+buildMenuWidth, y+buildMenuHeight)
	btn := NewButton(image.Rect(x+10, y+44, x+buildMenuWidth-10, y+buildMenuHeight-10), "Build Tower")
	return &BuildMenu{Rect: rect, Button: btn}
}

// Sync переносит состояние из HUD в панель.
func (m *BuildMenu) Sync(prompt string, canBuild bool) {
	m.Prompt = prompt
	m.Button.Enabled = canBuild
}

// Contains — клик пришёлся на панель, а не на глобус.
func (m *BuildMenu) Contains(x, y int) bool {
	return image.Pt(x, y).In(m.Rect)
}

func (m *BuildMenu) Draw(screen *ebiten.Image, mx, my int) {
	x, y := float32(m.Rect.Min.X), float32(m.Rect.Min.Y)
	vector.DrawFilledRect(screen, x, y, float32(m.Rect.Dx()), float32(m.Rect.Dy()), config.PanelColor, false)
	vector.StrokeRect(screen, x, y, float32(m.Rect.Dx()), float32(m.Rect.Dy()), 1, config.UIBorderColor, false)
	text.Draw(screen, m.Prompt, DefaultFace, m.Rect.Min.X+10, m.Rect.Min.Y+24, config.TextLightColor)
	m.Button.Draw(screen, mx, my)
}
