package system_test

import (
	"math"
	"testing"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/defs"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/system"
	"go-globe-defense/internal/types"
	"go-globe-defense/internal/utils"
	"go-globe-defense/pkg/goldberg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder собирает события по типам.
type recorder struct {
	events map[event.EventType][]event.Event
}

func newRecorder(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{events: make(map[event.EventType][]event.Event)}
	l := &event.FuncListener{Fn: func(e event.Event) {
		r.events[e.Type] = append(r.events[e.Type], e)
	}}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return r
}

func (r *recorder) count(t event.EventType) int { return len(r.events[t]) }

func newBoard(t *testing.T, frequency int) *system.Board {
	t.Helper()
	sphere, err := goldberg.BuildTileSphere(5, 1.1, frequency)
	require.NoError(t, err)
	pentagons := sphere.PentagonIDs()
	return &system.Board{
		Sphere: sphere,
		Graph:  goldberg.BuildTileGraph(sphere.Tiles),
		Target: pentagons[0],
		Spawns: pentagons[1:],
	}
}

type fixture struct {
	ecs        *entity.ECS
	board      *system.Board
	dispatcher *event.Dispatcher
	waves      *system.WaveSystem
	rec        *recorder
}

func newFixture(t *testing.T, schedule *defs.WaveSchedule) *fixture {
	t.Helper()
	ecs := entity.NewECS()
	board := newBoard(t, 3)
	d := event.NewDispatcher()
	rec := newRecorder(d,
		event.EnemySpawned, event.EnemyReachedEnd, event.EnemyKilled,
		event.WaveStarted, event.WaveCleared, event.WavesCompleted,
		event.RoutesChanged, event.ShotFired,
	)
	ws := system.NewWaveSystem(ecs, board, schedule, utils.NewPRNGService(42), d)
	return &fixture{ecs: ecs, board: board, dispatcher: d, waves: ws, rec: rec}
}

// runUntil тикает волны, пока cond не выполнится или не кончится время.
func (f *fixture) runUntil(t *testing.T, dt, limit float64, cond func() bool) {
	t.Helper()
	for elapsed := 0.0; elapsed < limit; elapsed += dt {
		f.waves.Update(dt)
		if cond() {
			return
		}
	}
	t.Fatalf("condition not reached within %.1fs (phase %s)", limit, f.ecs.Wave.Phase)
}

func TestWaveSystem_InitialState(t *testing.T) {
	f := newFixture(t, defs.DefaultSchedule())
	w := f.ecs.Wave

	assert.Equal(t, -1, w.CurrentIndex)
	assert.Equal(t, component.PhasePreparing, w.Phase)
	assert.Equal(t, 8, w.EnemiesRemaining)
	assert.InDelta(t, 10.0, w.PendingDelay, 1e-9)
	assert.Len(t, w.Routes, 11)

	status := f.waves.Status()
	assert.Equal(t, 0, status.WaveNumber)
	assert.Equal(t, 10, status.TotalWaves)
	assert.True(t, status.HasNextWave)
	assert.InDelta(t, 10.0, status.SecondsToNextWave, 1e-9)

	// Подсветка: все спавны с маршрутом, путь без спавнов и цели.
	h := w.Highlight
	assert.Equal(t, f.board.Target, h.Target)
	assert.Len(t, h.Spawns, 11)
	assert.NotEmpty(t, h.Path)
	for _, id := range h.Path {
		assert.NotEqual(t, f.board.Target, id)
		assert.NotContains(t, h.Spawns, id)
	}
	assert.Equal(t, component.RoleTarget, h.Role(f.board.Target))
	assert.Equal(t, component.RoleSpawn, h.Role(f.board.Spawns[0]))
}

func TestWaveSystem_FirstWaveLifecycle(t *testing.T) {
	f := newFixture(t, defs.DefaultSchedule())

	f.runUntil(t, 0.05, 15, func() bool { return f.ecs.Wave.Phase == component.PhaseActive })
	assert.Equal(t, 0, f.ecs.Wave.CurrentIndex)
	assert.Equal(t, 1, f.rec.count(event.WaveStarted))

	f.runUntil(t, 0.05, 120, func() bool { return f.ecs.Wave.Phase == component.PhaseBreak })

	assert.Equal(t, 8, f.rec.count(event.EnemySpawned))
	assert.Equal(t, 8, f.rec.count(event.EnemyReachedEnd))
	assert.Equal(t, 1, f.rec.count(event.WaveCleared))
	assert.Empty(t, f.ecs.Enemies)

	w := f.ecs.Wave
	assert.Equal(t, 0, w.CurrentIndex)
	assert.InDelta(t, 10.0, w.PendingDelay, 1e-9)
	assert.Equal(t, 9, w.EnemiesRemaining)
	assert.Equal(t, 0, w.EnemiesSpawned)

	for _, e := range f.rec.events[event.EnemySpawned] {
		data := e.Data.(event.EnemyData)
		assert.Contains(t, f.board.Spawns, data.Tile)
	}
	for _, e := range f.rec.events[event.EnemyReachedEnd] {
		assert.Equal(t, f.board.Target, e.Data.(event.EnemyData).Tile)
	}
}

func TestWaveSystem_ActiveTurnsIntoClearing(t *testing.T) {
	f := newFixture(t, defs.DefaultSchedule())

	f.runUntil(t, 0.05, 60, func() bool { return f.ecs.Wave.Phase == component.PhaseClearing })
	assert.Equal(t, 8, f.ecs.Wave.EnemiesSpawned)
	assert.Zero(t, f.ecs.Wave.EnemiesRemaining)
	assert.NotEmpty(t, f.ecs.Enemies)

	status := f.waves.Status()
	assert.Equal(t, 1, status.WaveNumber)
	assert.Zero(t, status.SecondsToNextWave)
}

func TestWaveSystem_CompletesSchedule(t *testing.T) {
	interval := 0.3
	schedule := &defs.WaveSchedule{
		Timing: defs.WaveTiming{
			InitialDelay:         0.5,
			BreakDuration:        0.5,
			BaseSpawnInterval:    0.4,
			BaseSpawnVariance:    0,
			MinimumSpawnInterval: 0.2,
		},
		Waves: []defs.WaveDefinition{
			{Enemies: 2, Health: 5, Speed: 2},
			{Enemies: 3, Health: 5, Speed: 3, SpawnInterval: &interval},
		},
	}
	f := newFixture(t, schedule)

	f.runUntil(t, 0.1, 200, func() bool { return f.ecs.Wave.Phase == component.PhaseComplete })

	assert.Equal(t, 2, f.rec.count(event.WaveStarted))
	assert.Equal(t, 1, f.rec.count(event.WaveCleared))
	require.Equal(t, 1, f.rec.count(event.WavesCompleted))
	data := f.rec.events[event.WavesCompleted][0].Data.(event.WaveData)
	assert.False(t, data.Halted)
	assert.Equal(t, 2, data.Number)
	assert.Equal(t, 5, f.rec.count(event.EnemySpawned))

	status := f.waves.Status()
	assert.False(t, status.HasNextWave)
	assert.Equal(t, component.PhaseComplete, status.Phase)

	// Завершённый контроллер больше ничего не делает.
	f.waves.Update(5)
	assert.Equal(t, 5, f.rec.count(event.EnemySpawned))
	assert.Equal(t, 1, f.rec.count(event.WavesCompleted))
}

func TestWaveSystem_ZeroInitialDelayStartsOnFirstTick(t *testing.T) {
	schedule := defs.DefaultSchedule()
	schedule.Timing.InitialDelay = 0
	f := newFixture(t, schedule)

	f.waves.Update(0.001)
	assert.Equal(t, component.PhaseActive, f.ecs.Wave.Phase)
}

func TestWaveSystem_HaltsWhenTargetIsSealed(t *testing.T) {
	ecs := entity.NewECS()
	board := newBoard(t, 3)
	for _, n := range board.Graph.Neighbors(board.Target) {
		board.Sphere.SetOccupied(n, true)
	}
	d := event.NewDispatcher()
	rec := newRecorder(d, event.WavesCompleted, event.WaveStarted)
	ws := system.NewWaveSystem(ecs, board, defs.DefaultSchedule(), utils.NewPRNGService(1), d)

	assert.Empty(t, ecs.Wave.Routes)
	assert.Empty(t, ecs.Wave.Highlight.Spawns)

	ws.Update(11)
	assert.Equal(t, component.PhaseComplete, ecs.Wave.Phase)
	assert.Zero(t, rec.count(event.WaveStarted))
	require.Equal(t, 1, rec.count(event.WavesCompleted))
	assert.True(t, rec.events[event.WavesCompleted][0].Data.(event.WaveData).Halted)
}

func TestWaveSystem_RecalculateRoutesAvoidsTowers(t *testing.T) {
	f := newFixture(t, defs.DefaultSchedule())
	f.runUntil(t, 0.05, 30, func() bool { return len(f.ecs.Enemies) >= 3 })

	// Занимаем промежуточные тайлы маршрута первого врага.
	ids := f.ecs.EnemyIDs()
	path := f.ecs.Paths[ids[0]]
	before := path.NormalizedProgress()
	var blocked []goldberg.TileID
	for _, id := range path.Tiles[path.SegmentIndex+2 : len(path.Tiles)-1] {
		f.board.Sphere.SetOccupied(id, true)
		blocked = append(blocked, id)
	}

	routed := f.waves.RecalculateRoutes()
	if !routed {
		assert.Empty(t, f.ecs.Wave.Routes)
		return
	}
	for spawn, route := range f.ecs.Wave.Routes {
		for _, id := range route[1 : len(route)-1] {
			assert.NotContains(t, blocked, id, "route from %d", spawn)
		}
	}
	for _, id := range f.ecs.EnemyIDs() {
		p := f.ecs.Paths[id]
		assert.Contains(t, f.ecs.Wave.Routes, p.SpawnTile)
		assert.Equal(t, f.ecs.Wave.Routes[p.SpawnTile], p.Tiles)
	}
	if p, ok := f.ecs.Paths[ids[0]]; ok {
		segments := float64(p.Segments())
		assert.InDelta(t, before, p.NormalizedProgress(), 1/segments+1e-9)
	}
}

func TestAssignRoute_PreservesProgress(t *testing.T) {
	dirs := func(n int) []goldberg.Vec3 {
		out := make([]goldberg.Vec3, n)
		for i := range out {
			a := float64(i) * 0.2
			out[i] = goldberg.Vec3{X: math.Cos(a), Y: math.Sin(a)}
		}
		return out
	}
	tiles := func(n int) []goldberg.TileID {
		out := make([]goldberg.TileID, n)
		for i := range out {
			out[i] = goldberg.TileID(i)
		}
		return out
	}

	tests := []struct {
		name      string
		newTiles  int
		wantIndex int
		wantProg  float64
	}{
		{"longer route", 9, 5, 0},
		{"shorter route", 4, 1, 0.875},
		{"single segment", 2, 0, 0.625},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := &component.Path{
				Tiles:           tiles(5),
				Directions:      dirs(5),
				SegmentIndex:    2,
				SegmentProgress: 0.5,
			}
			ok := system.AssignRoute(path, tiles(tc.newTiles), dirs(tc.newTiles), 7, 0.2)
			require.True(t, ok)
			assert.Equal(t, tc.wantIndex, path.SegmentIndex)
			assert.InDelta(t, tc.wantProg, path.SegmentProgress, 1e-9)
			assert.Equal(t, goldberg.TileID(7), path.SpawnTile)
			assert.Greater(t, path.SegmentDuration, 0.0)
		})
	}

	t.Run("end of route is clamped", func(t *testing.T) {
		path := &component.Path{Tiles: tiles(3), Directions: dirs(3), SegmentIndex: 1, SegmentProgress: 1}
		require.True(t, system.AssignRoute(path, tiles(5), dirs(5), 0, 0.2))
		assert.Equal(t, 3, path.SegmentIndex)
		assert.InDelta(t, 0.999, path.SegmentProgress, 1e-9)
	})

	t.Run("too short route is rejected", func(t *testing.T) {
		path := &component.Path{Tiles: tiles(3), Directions: dirs(3), SegmentIndex: 1}
		assert.False(t, system.AssignRoute(path, tiles(1), dirs(1), 0, 0.2))
		assert.Equal(t, 1, path.SegmentIndex)
		assert.Len(t, path.Tiles, 3)
	})
}

// equatorPath — маршрут по экватору с шагом в один сегмент в секунду.
func equatorPath(segments int) *component.Path {
	step := math.Pi / 12
	path := &component.Path{}
	for i := 0; i <= segments; i++ {
		a := float64(i) * step
		path.Tiles = append(path.Tiles, goldberg.TileID(i))
		path.Directions = append(path.Directions, goldberg.Vec3{X: math.Cos(a), Y: math.Sin(a)})
	}
	path.SegmentDuration = system.SegmentDuration(path.Directions, 0, 0.2)
	return path
}

func addEnemy(ecs *entity.ECS, path *component.Path, health float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{TravelRadius: 2}
	ecs.Paths[id] = path
	ecs.Velocities[id] = &component.Velocity{SpeedMultiplier: 1}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Positions[id] = &component.Position{Vec3: path.Directions[0].Scale(2)}
	return id
}

func TestSegmentDuration(t *testing.T) {
	path := equatorPath(3)
	assert.InDelta(t, 1.0, system.SegmentDuration(path.Directions, 0, 0.2), 1e-9)
	assert.InDelta(t, 2.0, system.SegmentDuration(path.Directions, 0, 2), 1e-9)
	assert.InDelta(t, 0.2, system.SegmentDuration(path.Directions, 3, 0.2), 1e-9)
	same := []goldberg.Vec3{{X: 1}, {X: 1}}
	assert.InDelta(t, 0.2, system.SegmentDuration(same, 0, 0.2), 1e-9)
}

func TestMovementSystem_CarriesOverflowAcrossSegments(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d, event.EnemyReachedEnd)
	ms := system.NewMovementSystem(ecs, d, 0.2)

	id := addEnemy(ecs, equatorPath(4), 10)
	ms.Update(2.5)

	path := ecs.Paths[id]
	assert.Equal(t, 2, path.SegmentIndex)
	assert.InDelta(t, 0.5, path.SegmentProgress, 1e-6)
	assert.InDelta(t, 2.0, ecs.Positions[id].Len(), 1e-9)
	wantAngle := 2.5 * math.Pi / 12
	assert.InDelta(t, wantAngle, math.Atan2(ecs.Positions[id].Y, ecs.Positions[id].X), 1e-6)

	ms.Update(10)
	assert.NotContains(t, ecs.Enemies, id)
	assert.NotContains(t, ecs.Positions, id)
	require.Equal(t, 1, rec.count(event.EnemyReachedEnd))
	assert.Equal(t, goldberg.TileID(4), rec.events[event.EnemyReachedEnd][0].Data.(event.EnemyData).Tile)

	ms.Update(10)
	assert.Equal(t, 1, rec.count(event.EnemyReachedEnd))
}

func TestMovementSystem_SpeedScalesProgress(t *testing.T) {
	ecs := entity.NewECS()
	ms := system.NewMovementSystem(ecs, event.NewDispatcher(), 0.2)

	slow := addEnemy(ecs, equatorPath(4), 10)
	fast := addEnemy(ecs, equatorPath(4), 10)
	ecs.Velocities[fast].SpeedMultiplier = 2

	ms.Update(0.5)
	assert.InDelta(t, 0.5, ecs.Paths[slow].SegmentProgress, 1e-9)
	assert.InDelta(t, 1.0, float64(ecs.Paths[fast].SegmentIndex)+ecs.Paths[fast].SegmentProgress, 1e-9)
}

func TestMovementSystem_RemovesDeadAndPathless(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d, event.EnemyReachedEnd)
	ms := system.NewMovementSystem(ecs, d, 0.2)

	dead := addEnemy(ecs, equatorPath(2), 10)
	ecs.Healths[dead].Value = 0
	pathless := addEnemy(ecs, equatorPath(2), 10)
	ecs.Paths[pathless].Directions = ecs.Paths[pathless].Directions[:1]

	ms.Update(0.1)
	assert.Empty(t, ecs.Enemies)
	assert.Zero(t, rec.count(event.EnemyReachedEnd))
}

func addTower(ecs *entity.ECS, tile goldberg.TileID, pos goldberg.Vec3, inRange ...goldberg.TileID) types.EntityID {
	id := ecs.NewEntity()
	r := make(map[goldberg.TileID]struct{})
	for _, t := range inRange {
		r[t] = struct{}{}
	}
	ecs.Towers[id] = &component.Tower{Tile: tile, Range: r}
	ecs.Combats[id] = &component.Combat{Damage: 1, FireInterval: 1}
	ecs.Positions[id] = &component.Position{Vec3: pos}
	return id
}

func TestCombatSystem_TenShotsKillTenHealthEnemy(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d, event.ShotFired, event.EnemyKilled)
	cs := system.NewCombatSystem(ecs, d)

	enemy := addEnemy(ecs, equatorPath(3), 10)
	tower := addTower(ecs, 50, goldberg.Vec3{X: 2, Y: 0.1}, 0, 1)

	for i := 0; i < 9; i++ {
		cs.Update(1)
	}
	assert.Equal(t, 9, rec.count(event.ShotFired))
	assert.InDelta(t, 1.0, ecs.Healths[enemy].Value, 1e-9)
	assert.InDelta(t, 9.0, ecs.Enemies[enemy].TotalDamage, 1e-9)
	assert.Zero(t, rec.count(event.EnemyKilled))

	cs.Update(1)
	assert.Equal(t, 10, rec.count(event.ShotFired))
	require.Equal(t, 1, rec.count(event.EnemyKilled))
	assert.True(t, rec.events[event.ShotFired][9].Data.(event.ShotData).Killed)
	assert.NotContains(t, ecs.Enemies, enemy)
	assert.Len(t, ecs.Shots, 10)

	shot := ecs.Shots[ecs.NextID-1]
	require.NotNil(t, shot)
	assert.Equal(t, ecs.Positions[tower].Vec3, shot.From)

	cs.Update(1)
	assert.Equal(t, 10, rec.count(event.ShotFired))
}

func TestCombatSystem_CooldownAndTargeting(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d, event.ShotFired)
	cs := system.NewCombatSystem(ecs, d)

	far := addEnemy(ecs, equatorPath(3), 10)
	near := addEnemy(ecs, equatorPath(3), 10)
	ecs.Positions[near].Vec3 = goldberg.Vec3{X: 2, Y: 1}
	outside := addEnemy(ecs, equatorPath(3), 10)
	ecs.Paths[outside].SegmentIndex = 2
	ecs.Positions[outside].Vec3 = goldberg.Vec3{X: 2, Y: 1.05}

	addTower(ecs, 50, goldberg.Vec3{X: 2, Y: 1.1}, 0)

	cs.Update(0.25)
	require.Equal(t, 1, rec.count(event.ShotFired))
	assert.Equal(t, near, rec.events[event.ShotFired][0].Data.(event.ShotData).EnemyID)

	// Перезарядка: следующие полсекунды башня молчит.
	cs.Update(0.5)
	assert.Equal(t, 1, rec.count(event.ShotFired))
	cs.Update(0.5)
	assert.Equal(t, 2, rec.count(event.ShotFired))

	assert.InDelta(t, 10.0, ecs.Healths[far].Value, 1e-9)
	assert.InDelta(t, 10.0, ecs.Healths[outside].Value, 1e-9)
}

func TestVisualEffectSystem_ShotsFadeAndExpire(t *testing.T) {
	ecs := entity.NewECS()
	vs := system.NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.Shots[id] = &component.Shot{Lifetime: 0.25}

	vs.Update(0.1)
	require.Contains(t, ecs.Shots, id)
	assert.InDelta(t, 0.6, ecs.Shots[id].Opacity(), 1e-9)

	vs.Update(0.2)
	assert.NotContains(t, ecs.Shots, id)
}

func TestApplyDamage(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, equatorPath(1), 3)

	assert.InDelta(t, 1.0, system.ApplyDamage(ecs, id, 2), 1e-9)
	assert.InDelta(t, 0.0, system.ApplyDamage(ecs, id, 5), 1e-9)
	assert.InDelta(t, 0.0, system.ApplyDamage(ecs, id, -4), 1e-9)
	assert.InDelta(t, -1.0, system.ApplyDamage(ecs, 999, 1), 1e-9)
}

type fakeContext struct {
	halted, cleared int
}

func (f *fakeContext) HaltWaves()      { f.halted++ }
func (f *fakeContext) ClearSelection() { f.cleared++ }

func TestStateSystem_BaseHealthAndOutcome(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d, event.BaseDamaged, event.GameOver, event.GameWon)
	ctx := &fakeContext{}
	ss := system.NewStateSystem(ecs, ctx, d)

	for i := 0; i < 9; i++ {
		d.Dispatch(event.Event{Type: event.EnemyReachedEnd})
	}
	assert.Equal(t, 10, ecs.GameState.BaseHealth)
	assert.Equal(t, component.OutcomeNone, ss.Current())

	d.Dispatch(event.Event{Type: event.EnemyReachedEnd})
	assert.Equal(t, 0, ecs.GameState.BaseHealth)
	assert.Equal(t, component.OutcomeLost, ss.Current())
	assert.Equal(t, 1, ctx.halted)
	assert.Equal(t, 1, ctx.cleared)
	assert.Equal(t, 1, rec.count(event.GameOver))

	// После поражения урон и победа игнорируются.
	d.Dispatch(event.Event{Type: event.EnemyReachedEnd})
	d.Dispatch(event.Event{Type: event.WavesCompleted, Data: event.WaveData{Number: 10, Total: 10}})
	assert.Equal(t, 10, rec.count(event.BaseDamaged))
	assert.Zero(t, rec.count(event.GameWon))

	ss.Reset()
	assert.Equal(t, 100, ecs.GameState.BaseHealth)

	d.Dispatch(event.Event{Type: event.WavesCompleted, Data: event.WaveData{Number: 3, Total: 10, Halted: true}})
	assert.Equal(t, component.OutcomeNone, ss.Current())

	d.Dispatch(event.Event{Type: event.WavesCompleted, Data: event.WaveData{Number: 10, Total: 10}})
	assert.Equal(t, component.OutcomeWon, ss.Current())
	assert.Equal(t, 1, rec.count(event.GameWon))
}
