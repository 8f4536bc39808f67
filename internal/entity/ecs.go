// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/types"
	"go-globe-defense/pkg/goldberg"
)

// ECS — контекст симуляции. Один экземпляр на партию, без глобальных синглтонов.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Shots       map[types.EntityID]*component.Shot
	Wave        *component.Wave
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Shots:       make(map[types.EntityID]*component.Shot),
		Wave: &component.Wave{
			CurrentIndex: -1,
			Phase:        component.PhasePreparing,
			Target:       goldberg.NoTile,
			Routes:       make(map[goldberg.TileID][]goldberg.TileID),
		},
		GameState: &component.GameState{
			BaseHealth: config.BaseHealth,
			Selected:   goldberg.NoTile,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Shots, id)
}

func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

func (ecs *ECS) ClearTowers() {
	for id := range ecs.Towers {
		ecs.RemoveEntity(id)
	}
}

func (ecs *ECS) ClearShots() {
	for id := range ecs.Shots {
		ecs.RemoveEntity(id)
	}
}

// EnemyIDs возвращает ID врагов по возрастанию, чтобы обход был детерминированным.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// TowerIDs возвращает ID башен по возрастанию.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// TowerOnTile ищет башню на тайле; 0 — башни нет.
func (ecs *ECS) TowerOnTile(tile goldberg.TileID) types.EntityID {
	for id, t := range ecs.Towers {
		if t.Tile == tile {
			return id
		}
	}
	return 0
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
