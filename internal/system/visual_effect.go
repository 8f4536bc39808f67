// internal/system/visual_effect.go
package system

import (
	"go-globe-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами выстрелов.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update старит выстрелы и удаляет отжившие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, shot := range s.ecs.Shots {
		shot.Elapsed += deltaTime
		if shot.Elapsed >= shot.Lifetime {
			s.ecs.RemoveEntity(id)
		}
	}
}
