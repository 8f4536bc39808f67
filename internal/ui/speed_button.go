// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — две стрелки «перемотки», цвет показывает множитель скорости.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	height := size * 1.2
	width := size
	offset := width * 0.8
	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	left := []point{
		{b.X - width, b.Y - height/2},
		{b.X, b.Y},
		{b.X - width, b.Y + height/2},
	}
	right := []point{
		{b.X - width + offset, b.Y - height/2},
		{b.X + offset, b.Y},
		{b.X - width + offset, b.Y + height/2},
	}
	drawPolygon(screen, left, fill, config.UIBorderColor, config.UIBorderWidth)
	drawPolygon(screen, right, fill, config.UIBorderColor, config.UIBorderWidth)
}

// IsClicked использует круг, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState синхронизирует кнопку с индексом скорости игры.
func (b *SpeedButton) SetState(index int) {
	if index == b.CurrentState {
		return
	}
	b.CurrentState = index
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// Ready — прошёл ли ClickCooldown с последнего переключения.
func (b *SpeedButton) Ready(now time.Time) bool {
	return now.Sub(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}
