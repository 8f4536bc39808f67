// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную прямоугольную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	Enabled       bool
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	DisabledColor color.Color
	Face          font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:          rect,
		Text:          label,
		Enabled:       true,
		TextColor:     config.TextLightColor,
		BgColor:       config.ButtonColor,
		HoverColor:    config.ButtonHoverColor,
		DisabledColor: config.ButtonDisabledColor,
		Face:          DefaultFace,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку; (mx, my) — позиция курсора для подсветки.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = b.DisabledColor
	case b.Contains(mx, my):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.UIBorderColor, false)

	bounds := text.BoundString(b.Face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}
