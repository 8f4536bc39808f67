package ui

import (
	"image/color"
	"strings"

	"go-globe-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и две
// строки статуса под ним: счётчик волн и таймер.
type WaveIndicator struct {
	X, Y         float32
	Color        color.Color
	FinalColor   color.Color
	OutlineColor color.Color
	Face         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.UIColorBlue,
		FinalColor:   config.RouteTargetColor,
		OutlineColor: color.White,
		Face:         DefaultFace,
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует индикатор. Последняя волна выделяется цветом цели.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, totalWaves int, waveLabel, timerLabel string) {
	x, y := int(i.X), int(i.Y)
	if roman := ToRoman(waveNumber); roman != "" {
		c := i.Color
		if waveNumber == totalWaves {
			c = i.FinalColor
		}
		bounds := text.BoundString(i.Face, roman)
		rx := x - bounds.Dx()/2
		// Обводка в один пиксель
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx != 0 || dy != 0 {
					text.Draw(screen, roman, i.Face, rx+dx, y+dy, i.OutlineColor)
				}
			}
		}
		text.Draw(screen, roman, i.Face, rx, y, c)
	}

	for n, line := range []string{waveLabel, timerLabel} {
		bounds := text.BoundString(i.Face, line)
		text.Draw(screen, line, i.Face, x-bounds.Dx()/2, y+(n+1)*config.HUDLineHeight, config.TextLightColor)
	}
}
