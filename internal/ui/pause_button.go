// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		drawPolygon(screen, []point{
			{b.X - size, b.Y - size*1.2},
			{b.X + size, b.Y},
			{b.X - size, b.Y + size*1.2},
		}, b.PlayColor, config.UIBorderColor, config.UIBorderWidth)
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, config.UIBorderWidth, config.UIBorderColor, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*1.5
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused == paused {
		return
	}
	b.IsPaused = paused
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

func (b *PauseButton) Ready(now time.Time) bool {
	return now.Sub(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}
