// internal/component/wave.go
package component

import "go-globe-defense/pkg/goldberg"

// WavePhase — фаза контроллера волн.
type WavePhase int

const (
	PhasePreparing WavePhase = iota // до первой волны
	PhaseActive                     // идёт спавн
	PhaseClearing                   // всё заспавнено, враги ещё живы
	PhaseBreak                      // отсчёт до следующей волны
	PhaseComplete                   // все волны пройдены
)

func (p WavePhase) String() string {
	switch p {
	case PhasePreparing:
		return "Preparing"
	case PhaseActive:
		return "Active"
	case PhaseClearing:
		return "Clearing"
	case PhaseBreak:
		return "Break"
	case PhaseComplete:
		return "Complete"
	}
	return "Unknown"
}

// InProgress — волна запущена (спавнит или добивается).
func (p WavePhase) InProgress() bool {
	return p == PhaseActive || p == PhaseClearing
}

// RouteHighlight — наборы тайлов для подсветки маршрутов.
type RouteHighlight struct {
	Spawns []goldberg.TileID
	Target goldberg.TileID
	Path   []goldberg.TileID // объединение маршрутов без спавнов и цели
}

// Role сообщает роль тайла в подсветке.
func (h *RouteHighlight) Role(id goldberg.TileID) RouteRole {
	if id == h.Target && id != goldberg.NoTile {
		return RoleTarget
	}
	for _, s := range h.Spawns {
		if s == id {
			return RoleSpawn
		}
	}
	for _, p := range h.Path {
		if p == id {
			return RolePath
		}
	}
	return RoleNone
}

type RouteRole int

const (
	RoleNone RouteRole = iota
	RoleSpawn
	RoleTarget
	RolePath
)

// Wave — изменяемое состояние контроллера волн.
type Wave struct {
	CurrentIndex     int // -1 до первой волны
	Phase            WavePhase
	EnemiesSpawned   int
	EnemiesRemaining int     // ещё не заспавнено в текущей/следующей волне
	PendingDelay     float64 // секунды до старта следующей волны
	SpawnCountdown   float64

	Target    goldberg.TileID
	Spawns    []goldberg.TileID
	Routes    map[goldberg.TileID][]goldberg.TileID // по тайлу спавна
	Highlight RouteHighlight
}
