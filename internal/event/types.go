// internal/event/types.go
package event

import (
	"go-globe-defense/internal/types"
	"go-globe-defense/pkg/goldberg"
)

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до цели
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен башнями
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	ShotFired       EventType = "ShotFired"
	WaveStarted     EventType = "WaveStarted"
	WaveCleared     EventType = "WaveCleared" // Волна закончилась
	WavesCompleted  EventType = "WavesCompleted"
	RoutesChanged   EventType = "RoutesChanged"
	BaseDamaged     EventType = "BaseDamaged"
	GameOver        EventType = "GameOver"
	GameWon         EventType = "GameWon"
)

// EnemyData — данные событий о враге.
type EnemyData struct {
	EnemyID types.EntityID
	Tile    goldberg.TileID
}

// TowerData — данные о постройке башни.
type TowerData struct {
	TowerID types.EntityID
	Tile    goldberg.TileID
}

// ShotData — данные о выстреле.
type ShotData struct {
	TowerID types.EntityID
	EnemyID types.EntityID
	Killed  bool
}

// WaveData — номер волны (с единицы) и их общее число.
// Halted означает, что волны остановлены досрочно: ни один спавн не дошёл бы до цели.
type WaveData struct {
	Number int
	Total  int
	Halted bool
}

// RoutesData — сколько спавнов имеют маршрут до цели.
type RoutesData struct {
	Routed int
	Spawns int
}

// BaseData — остаток здоровья базы.
type BaseData struct {
	Health int
}
