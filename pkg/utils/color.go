package utils

import "image/color"

// Shade умножает яркость цвета на k, зажатый в [0, 1]; альфа не меняется.
func Shade(c color.RGBA, k float64) color.RGBA {
	k = Clamp(k, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
