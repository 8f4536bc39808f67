// internal/system/movement.go
package system

import (
	"math"

	"go-globe-defense/internal/config"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/types"
)

// MovementSystem двигает врагов по маршрутам на сфере.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	minInterval     float64
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, minInterval float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, minInterval: minInterval}
}

// Update продвигает каждого врага на deltaTime. Остаток времени после конца
// сегмента переносится на следующий, так что большой шаг проходит несколько
// сегментов за один тик. Каждая итерация либо обнуляет остаток, либо
// увеличивает индекс сегмента, поэтому цикл конечен.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		// Враг мог быть удалён обработчиком события в этом же тике.
		enemy, alive := s.ecs.Enemies[id]
		if !alive {
			continue
		}
		path, hasPath := s.ecs.Paths[id]

		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		if !hasPath || path.Segments() < 1 {
			s.ecs.RemoveEntity(id)
			continue
		}

		speed := config.MinSpeedMultiplier
		if vel, ok := s.ecs.Velocities[id]; ok {
			speed = math.Max(vel.SpeedMultiplier, config.MinSpeedMultiplier)
		}

		remaining := deltaTime
		reached := false
		for remaining > 0 {
			if path.SegmentIndex >= path.Segments() {
				reached = true
				break
			}
			if math.IsNaN(path.SegmentDuration) || path.SegmentDuration <= 0 {
				path.SegmentDuration = SegmentDuration(path.Directions, path.SegmentIndex, s.minInterval)
			}

			path.SegmentProgress += remaining * speed / path.SegmentDuration
			if path.SegmentProgress < 1 {
				remaining = 0
				break
			}

			remaining = (path.SegmentProgress - 1) * path.SegmentDuration / speed
			path.SegmentIndex++
			if path.SegmentIndex >= path.Segments() {
				reached = true
				break
			}
			path.SegmentProgress = 0
			path.SegmentDuration = SegmentDuration(path.Directions, path.SegmentIndex, s.minInterval)
		}

		if reached {
			s.reachEnd(id)
			continue
		}

		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Vec3 = PathPosition(path, enemy.TravelRadius)
		}
	}
}

// reachEnd убирает врага, дошедшего до цели. Событие уходит ровно один раз:
// сущность удаляется в том же вызове.
func (s *MovementSystem) reachEnd(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	if enemy.ReachedEnd {
		return
	}
	enemy.ReachedEnd = true
	tile := s.ecs.Paths[id].Tiles[len(s.ecs.Paths[id].Tiles)-1]
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyReachedEnd,
		Data: event.EnemyData{EnemyID: id, Tile: tile},
	})
}
