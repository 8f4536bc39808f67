// internal/system/combat.go
package system

import (
	"math"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/types"
	"go-globe-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CombatSystem управляет атакой башен. Выстрел мгновенный: урон наносится
// сразу, а Shot живёт только как визуальный эффект.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	shotLifetime    float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		shotLifetime:    config.ShotLifetime,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		combat.FireCooldown = math.Max(combat.FireCooldown-deltaTime, 0)
		if combat.FireCooldown > 0 {
			continue
		}

		enemyID := s.findNearestEnemyInRange(id)
		if enemyID == 0 {
			continue
		}
		s.fire(id, enemyID, combat)
		combat.FireCooldown = combat.FireInterval
	}
}

// findNearestEnemyInRange — ближайший к башне живой враг, чей текущий тайл
// маршрута попадает в зону башни. 0, если такого нет.
func (s *CombatSystem) findNearestEnemyInRange(towerID types.EntityID) types.EntityID {
	tower := s.ecs.Towers[towerID]
	towerPos, hasPos := s.ecs.Positions[towerID]
	if !hasPos {
		return 0
	}

	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range s.ecs.EnemyIDs() {
		health, ok := s.ecs.Healths[enemyID]
		if !ok || health.Value <= 0 {
			continue
		}
		path, ok := s.ecs.Paths[enemyID]
		if !ok || !tower.InRange(path.CurrentTile()) {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := towerPos.DistanceSqTo(enemyPos.Vec3)
		if distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest
}

func (s *CombatSystem) fire(towerID, enemyID types.EntityID, combat *component.Combat) {
	from := s.ecs.Positions[towerID].Vec3
	to := s.ecs.Positions[enemyID].Vec3

	shotID := s.ecs.NewEntity()
	s.ecs.Shots[shotID] = &component.Shot{
		From:     from,
		To:       to,
		Color:    config.ShotColor,
		Lifetime: s.shotLifetime,
	}

	left := ApplyDamage(s.ecs, enemyID, combat.Damage)
	killed := left == 0
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{TowerID: towerID, EnemyID: enemyID, Killed: killed},
	})
	if !killed {
		return
	}

	tile := s.ecs.Paths[enemyID].CurrentTile()
	logger.Log.WithFields(logrus.Fields{
		"enemy": enemyID,
		"tower": towerID,
		"tile":  tile,
	}).Debug("Enemy destroyed")
	s.ecs.RemoveEntity(enemyID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{EnemyID: enemyID, Tile: tile},
	})
}
