// internal/system/wave.go
package system

import (
	"errors"
	"math"
	"sort"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/defs"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/utils"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// WaveStatus — снимок состояния волн для интерфейса.
type WaveStatus struct {
	WaveNumber       int // с единицы; 0 до первой волны
	TotalWaves       int
	Phase            component.WavePhase
	EnemiesRemaining int // ещё не заспавнено
	EnemiesSpawned   int
	EnemiesInWave    int
	ActiveEnemies    int
	// SecondsToNextWave: 0 во время волны; HasNextWave == false после последней.
	SecondsToNextWave float64
	HasNextWave       bool
}

// WaveSystem — конечный автомат волн: подготовка, спавн, зачистка, перерыв.
// Владеет MovementSystem, так как движение врагов — часть тика волн.
type WaveSystem struct {
	ecs             *entity.ECS
	board           *Board
	schedule        *defs.WaveSchedule
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
	travelRadius    float64
	enemyRadius     float64
}

func NewWaveSystem(ecs *entity.ECS, board *Board, schedule *defs.WaveSchedule, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		board:           board,
		schedule:        schedule,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		movement:        NewMovementSystem(ecs, eventDispatcher, schedule.Timing.MinimumSpawnInterval),
		travelRadius:    board.TravelRadius(),
		enemyRadius:     board.EnemyRadius(),
	}
	ws.Reset()
	return ws
}

// Reset возвращает контроллер к состоянию перед первой волной.
func (s *WaveSystem) Reset() {
	s.ecs.ClearEnemies()

	w := s.ecs.Wave
	w.CurrentIndex = -1
	w.Phase = component.PhasePreparing
	w.EnemiesSpawned = 0
	w.EnemiesRemaining = s.schedule.At(0).Enemies
	w.PendingDelay = s.schedule.Timing.InitialDelay
	w.SpawnCountdown = s.adjustedSpawnInterval(s.schedule.At(0))
	w.Target = s.board.Target
	w.Spawns = append([]goldberg.TileID(nil), s.board.Spawns...)
	w.Routes = make(map[goldberg.TileID][]goldberg.TileID)
	w.Highlight = component.RouteHighlight{Target: s.board.Target}

	s.PrepareRoutes()
}

func (s *WaveSystem) TotalWaves() int { return s.schedule.Len() }

func (s *WaveSystem) TravelRadius() float64 { return s.travelRadius }

func (s *WaveSystem) EnemyRadius() float64 { return s.enemyRadius }

func (s *WaveSystem) currentWave() defs.ResolvedWave {
	return s.schedule.At(max(s.ecs.Wave.CurrentIndex, 0))
}

func (s *WaveSystem) nextWave() defs.ResolvedWave {
	return s.schedule.At(max(s.ecs.Wave.CurrentIndex+1, 0))
}

func (s *WaveSystem) minInterval() float64 {
	return s.schedule.Timing.MinimumSpawnInterval
}

// adjustedSpawnInterval — базовый интервал, делённый на скорость волны,
// не меньше минимального.
func (s *WaveSystem) adjustedSpawnInterval(w defs.ResolvedWave) float64 {
	base := math.Max(w.SpawnInterval, s.minInterval())
	speed := math.Max(w.Speed, config.MinSpeedMultiplier)
	return math.Max(s.minInterval(), base/speed)
}

func (s *WaveSystem) nextSpawnTimer() float64 {
	w := s.currentWave()
	return math.Max(s.minInterval(), s.adjustedSpawnInterval(w)+s.rng.Jitter(w.SpawnVariance))
}

// Update выполняет один тик контроллера и двигает врагов.
func (s *WaveSystem) Update(deltaTime float64) WaveStatus {
	w := s.ecs.Wave
	active := s.currentWave()

	switch w.Phase {
	case component.PhasePreparing, component.PhaseBreak:
		speed := math.Max(s.nextWave().Speed, config.MinSpeedMultiplier)
		w.PendingDelay -= deltaTime * speed
		if w.PendingDelay <= 0 {
			s.startNextWave()
		}
	case component.PhaseActive:
		if w.EnemiesSpawned < active.Enemies {
			w.SpawnCountdown -= deltaTime * math.Max(active.Speed, config.MinSpeedMultiplier)
			if w.SpawnCountdown <= 0 {
				if s.spawnEnemy() {
					w.EnemiesSpawned++
					w.EnemiesRemaining = max(w.EnemiesRemaining-1, 0)
				} else if len(w.Routes) == 0 {
					s.completeDefensively()
				}
				w.SpawnCountdown = s.nextSpawnTimer()
			}
		}
		if w.Phase == component.PhaseActive && w.EnemiesSpawned >= active.Enemies {
			w.Phase = component.PhaseClearing
		}
	}

	s.movement.Update(deltaTime)

	active = s.currentWave()
	if w.Phase.InProgress() && w.EnemiesSpawned >= active.Enemies && len(s.ecs.Enemies) == 0 {
		if w.CurrentIndex >= s.TotalWaves()-1 {
			s.completeAll()
		} else {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.WaveCleared,
				Data: event.WaveData{Number: w.CurrentIndex + 1, Total: s.TotalWaves()},
			})
			s.queueNextWave(active.BreakDuration)
		}
	}

	return s.Status()
}

// Status собирает WaveStatus без изменения состояния.
func (s *WaveSystem) Status() WaveStatus {
	w := s.ecs.Wave
	status := WaveStatus{
		WaveNumber:       w.CurrentIndex + 1,
		TotalWaves:       s.TotalWaves(),
		Phase:            w.Phase,
		EnemiesRemaining: w.EnemiesRemaining,
		EnemiesSpawned:   w.EnemiesSpawned,
		EnemiesInWave:    s.currentWave().Enemies,
		ActiveEnemies:    len(s.ecs.Enemies),
		HasNextWave:      w.Phase != component.PhaseComplete,
	}
	switch {
	case w.Phase == component.PhaseComplete:
		status.SecondsToNextWave = 0
	case w.Phase.InProgress():
		status.SecondsToNextWave = 0
	default:
		status.SecondsToNextWave = math.Max(w.PendingDelay, 0)
	}
	return status
}

func (s *WaveSystem) startNextWave() {
	w := s.ecs.Wave
	w.CurrentIndex++

	if w.CurrentIndex >= s.TotalWaves() {
		w.CurrentIndex = s.TotalWaves() - 1
		s.completeAll()
		return
	}

	wave := s.currentWave()
	w.PendingDelay = 0
	w.EnemiesSpawned = 0
	w.EnemiesRemaining = wave.Enemies

	if !s.PrepareRoutes() {
		s.completeDefensively()
		return
	}

	w.SpawnCountdown = math.Max(s.minInterval(), s.adjustedSpawnInterval(wave)*0.5)
	w.Phase = component.PhaseActive

	logger.Log.WithFields(logrus.Fields{
		"wave":    w.CurrentIndex + 1,
		"enemies": wave.Enemies,
		"health":  wave.Health,
		"speed":   wave.Speed,
		"routes":  len(w.Routes),
	}).Info("Wave started")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: w.CurrentIndex + 1, Total: s.TotalWaves()},
	})
}

func (s *WaveSystem) queueNextWave(delay float64) {
	w := s.ecs.Wave
	next := s.nextWave()
	w.PendingDelay = math.Max(0, delay)
	w.Phase = component.PhaseBreak
	w.EnemiesSpawned = 0
	w.EnemiesRemaining = next.Enemies
	w.SpawnCountdown = s.adjustedSpawnInterval(next)

	if !s.PrepareRoutes() {
		s.completeDefensively()
	}
}

func (s *WaveSystem) completeAll() {
	w := s.ecs.Wave
	w.Phase = component.PhaseComplete
	w.PendingDelay = 0
	w.EnemiesRemaining = 0
	w.Highlight = component.RouteHighlight{Target: goldberg.NoTile}

	logger.Log.WithField("waves", s.TotalWaves()).Info("All waves completed")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WavesCompleted,
		Data: event.WaveData{Number: s.TotalWaves(), Total: s.TotalWaves()},
	})
}

// completeDefensively завершает игру, когда ни один спавн не может дойти до цели.
func (s *WaveSystem) completeDefensively() {
	w := s.ecs.Wave
	w.Phase = component.PhaseComplete
	w.PendingDelay = 0
	w.EnemiesRemaining = 0

	logger.Log.WithField("wave", w.CurrentIndex+1).Warn("No spawn can reach the target, stopping waves")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WavesCompleted,
		Data: event.WaveData{Number: w.CurrentIndex + 1, Total: s.TotalWaves(), Halted: true},
	})
}

// Halt останавливает волны без события (например, при поражении).
func (s *WaveSystem) Halt() {
	w := s.ecs.Wave
	w.Phase = component.PhaseComplete
	w.PendingDelay = 0
	w.EnemiesRemaining = 0
	s.ecs.ClearEnemies()
}

// PrepareRoutes пересчитывает маршруты от каждого спавна до цели с учётом
// занятых тайлов, обновляет подсветку и переводит живых врагов на новые
// маршруты. Возвращает false, если ни один спавн не имеет маршрута.
func (s *WaveSystem) PrepareRoutes() bool {
	w := s.ecs.Wave
	routes := make(map[goldberg.TileID][]goldberg.TileID, len(w.Spawns))

	if w.Target != goldberg.NoTile {
		for _, spawn := range w.Spawns {
			route, err := goldberg.FindPath(s.board.Graph, spawn, w.Target, s.board.Sphere)
			if err != nil {
				if !errors.Is(err, goldberg.ErrNoPath) {
					logger.Log.WithError(err).WithField("spawn", spawn).Warn("Route lookup failed")
				}
				continue
			}
			if len(route) < 2 {
				continue
			}
			routes[spawn] = route
		}
	}

	w.Routes = routes
	s.refreshHighlight()

	logger.Log.WithFields(logrus.Fields{
		"routed": len(routes),
		"spawns": len(w.Spawns),
	}).Debug("Routes prepared")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoutesChanged,
		Data: event.RoutesData{Routed: len(routes), Spawns: len(w.Spawns)},
	})

	if len(routes) == 0 {
		w.EnemiesRemaining = 0
		return false
	}
	s.synchronizeEnemies()
	return true
}

// RecalculateRoutes вызывается после изменения занятости тайлов.
func (s *WaveSystem) RecalculateRoutes() bool {
	return s.PrepareRoutes()
}

func (s *WaveSystem) refreshHighlight() {
	w := s.ecs.Wave
	h := component.RouteHighlight{Target: w.Target}

	excluded := map[goldberg.TileID]struct{}{w.Target: {}}
	for _, spawn := range s.routedSpawns() {
		h.Spawns = append(h.Spawns, spawn)
		excluded[spawn] = struct{}{}
	}
	seen := make(map[goldberg.TileID]struct{})
	for _, spawn := range h.Spawns {
		for _, id := range w.Routes[spawn] {
			if _, skip := excluded[id]; skip {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			h.Path = append(h.Path, id)
		}
	}
	w.Highlight = h
}

// routedSpawns — спавны с маршрутом, по возрастанию ID.
func (s *WaveSystem) routedSpawns() []goldberg.TileID {
	spawns := make([]goldberg.TileID, 0, len(s.ecs.Wave.Routes))
	for spawn := range s.ecs.Wave.Routes {
		spawns = append(spawns, spawn)
	}
	sort.Slice(spawns, func(i, j int) bool { return spawns[i] < spawns[j] })
	return spawns
}

// synchronizeEnemies переводит врагов на актуальные маршруты. Враг, чей спавн
// потерял маршрут, получает случайный из оставшихся.
func (s *WaveSystem) synchronizeEnemies() {
	w := s.ecs.Wave
	available := s.routedSpawns()
	if len(available) == 0 {
		return
	}
	for _, id := range s.ecs.EnemyIDs() {
		path, ok := s.ecs.Paths[id]
		if !ok {
			continue
		}
		spawn := path.SpawnTile
		route, hasRoute := w.Routes[spawn]
		if !hasRoute || len(route) < 2 {
			spawn = available[s.rng.Intn(len(available))]
			route = w.Routes[spawn]
		}
		dirs := goldberg.RouteDirections(s.board.Sphere, route)
		if !AssignRoute(path, route, dirs, spawn, s.minInterval()) {
			s.ecs.RemoveEntity(id)
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Vec3 = PathPosition(path, s.ecs.Enemies[id].TravelRadius)
		}
	}
}

// spawnEnemy выбирает случайный спавн с маршрутом. Спавн без маршрута
// пропускается, и пробуется другой.
func (s *WaveSystem) spawnEnemy() bool {
	w := s.ecs.Wave
	if len(w.Routes) == 0 && !s.PrepareRoutes() {
		return false
	}

	choices := s.routedSpawns()
	for len(choices) > 0 {
		i := s.rng.Intn(len(choices))
		spawn := choices[i]
		choices = append(choices[:i], choices[i+1:]...)

		route := w.Routes[spawn]
		if len(route) < 2 {
			route2, err := goldberg.FindPath(s.board.Graph, spawn, w.Target, s.board.Sphere)
			if err != nil || len(route2) < 2 {
				delete(w.Routes, spawn)
				s.refreshHighlight()
				continue
			}
			route = route2
			w.Routes[spawn] = route
			s.refreshHighlight()
		}
		dirs := goldberg.RouteDirections(s.board.Sphere, route)
		if len(dirs) < 2 {
			delete(w.Routes, spawn)
			continue
		}

		s.createEnemy(spawn, route, dirs)
		return true
	}
	return false
}

func (s *WaveSystem) createEnemy(spawn goldberg.TileID, route []goldberg.TileID, dirs []goldberg.Vec3) {
	wave := s.currentWave()
	id := s.ecs.NewEntity()

	s.ecs.Enemies[id] = &component.Enemy{
		WaveIndex:    s.ecs.Wave.CurrentIndex,
		TravelRadius: s.travelRadius,
	}
	s.ecs.Healths[id] = &component.Health{Value: wave.Health, Max: wave.Health}
	s.ecs.Velocities[id] = &component.Velocity{SpeedMultiplier: math.Max(wave.Speed, config.MinSpeedMultiplier)}
	s.ecs.Paths[id] = &component.Path{
		Tiles:           route,
		Directions:      dirs,
		SegmentDuration: SegmentDuration(dirs, 0, s.minInterval()),
		SpawnTile:       spawn,
	}
	s.ecs.Positions[id] = &component.Position{Vec3: dirs[0].Scale(s.travelRadius)}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyColor,
		Radius: s.enemyRadius,
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{EnemyID: id, Tile: spawn},
	})
}
