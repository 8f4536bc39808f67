// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки. Radius задаётся в единицах глобуса.
type Renderable struct {
	Color     color.RGBA
	Radius    float64
	HasStroke bool
}
