// internal/component/visual.go
package component

import (
	"image/color"

	"go-globe-defense/pkg/goldberg"
)

// Shot — визуальный эффект выстрела: линия от башни до цели, затухающая со временем.
type Shot struct {
	From, To goldberg.Vec3
	Color    color.RGBA
	Elapsed  float64 // Сколько времени эффект уже активен
	Lifetime float64 // Общая продолжительность эффекта
}

// Opacity — оставшаяся доля времени жизни в [0, 1].
func (s *Shot) Opacity() float64 {
	if s.Lifetime <= 0 {
		return 0
	}
	remaining := s.Lifetime - s.Elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining / s.Lifetime
}
