// internal/system/utils.go
package system

import (
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/types"
)

// ApplyDamage наносит урон сущности. Здоровье не опускается ниже нуля.
// Возвращает оставшееся здоровье; -1, если у сущности нет здоровья.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) float64 {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return -1
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
	}

	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy {
		enemy.TotalDamage += damage
	}
	return health.Value
}
