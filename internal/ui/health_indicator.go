// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// BaseHealthIndicator отображает здоровье базы сеткой кружков: один кружок
// на одного прорвавшегося врага.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// Cells — сколько кружков заполнено и сколько всего.
func Cells(health, maxHealth, perCell int) (filled, total int) {
	if perCell <= 0 {
		perCell = 1
	}
	total = (maxHealth + perCell - 1) / perCell
	filled = (max(health, 0) + perCell - 1) / perCell
	return min(filled, total), total
}

// CellColor — цвет кружка j. Пока здоровья больше половины, «избыток» синий.
func CellColor(j, filled, total int) color.Color {
	if j >= filled {
		return config.TextDarkColor
	}
	half := total / 2
	if filled > half && j < filled-half {
		return config.UIColorBlue
	}
	return config.RouteTargetColor
}

func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	filled, total := Cells(health, maxHealth, config.DamagePerEnemy)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < total; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, CellColor(j, filled, total), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("Base %d/%d", health, maxHealth)
	text.Draw(screen, label, DefaultFace, int(i.X), int(i.Y)-8, config.TextLightColor)
}
