// internal/app/game.go
package app

import (
	"fmt"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/defs"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/system"
	"go-globe-defense/internal/utils"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game holds the simulation context and the systems that drive it.
type Game struct {
	ECS                *entity.ECS
	Board              *system.Board
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Tower              defs.TowerDefinition

	options Options
	hovered goldberg.TileID
}

// NewGame builds the globe, picks the target pentagon and wires the systems.
func NewGame(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	if err := opts.Schedule.Validate(); err != nil {
		return nil, fmt.Errorf("wave schedule: %w", err)
	}

	sphere, err := goldberg.BuildTileSphere(opts.Radius, opts.Radius*opts.ThicknessFactor, opts.Frequency)
	if err != nil {
		return nil, fmt.Errorf("build globe: %w", err)
	}
	var graph *goldberg.Graph
	if opts.MeshAdjacency {
		graph = goldberg.NewMeshGraph(sphere)
	} else {
		graph = goldberg.BuildTileGraph(sphere.Tiles)
	}

	rng := utils.NewPRNGService(opts.Seed)
	pentagons := sphere.PentagonIDs()
	if len(pentagons) < 2 {
		return nil, fmt.Errorf("globe has %d pentagons, need a target and at least one spawn", len(pentagons))
	}
	targetIdx := rng.Intn(len(pentagons))
	board := &system.Board{
		Sphere: sphere,
		Graph:  graph,
		Target: pentagons[targetIdx],
	}
	for i, id := range pentagons {
		if i != targetIdx {
			board.Spawns = append(board.Spawns, id)
		}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:                ecs,
		Board:              board,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		Tower:              *opts.Tower,
		options:            opts,
		hovered:            goldberg.NoTile,
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
	}
	g.WaveSystem = system.NewWaveSystem(ecs, board, opts.Schedule, rng, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	logger.Log.WithFields(logrus.Fields{
		"seed":      rng.Seed(),
		"frequency": opts.Frequency,
		"tiles":     sphere.Len(),
		"pentagons": sphere.Pentagons,
		"hexagons":  sphere.Hexagons,
		"target":    board.Target,
		"mesh":      opts.MeshAdjacency,
	}).Info("Globe ready")

	return g, nil
}

// Update progresses the game state by one frame. The delta is clamped before
// the speed multiplier so a stalled frame cannot skip a whole route.
func (g *Game) Update(deltaTime float64) {
	gs := g.ECS.GameState
	if gs.Paused {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	dt := deltaTime * g.Speed()
	g.ECS.GameTime += dt

	if gs.Outcome == component.OutcomeNone {
		g.WaveSystem.Update(dt)
		g.CombatSystem.Update(dt)
	}
	g.VisualEffectSystem.Update(dt)
}

// Reset starts a new game on the same globe: geometry, graph and target stay.
func (g *Game) Reset() {
	g.ECS.ClearTowers()
	g.ECS.ClearShots()
	g.Board.Sphere.ClearOccupancy()
	g.StateSystem.Reset()
	g.WaveSystem.Reset()
	g.ECS.GameTime = 0
	gs := g.ECS.GameState
	gs.Selected = goldberg.NoTile
	gs.Paused = false

	logger.Log.WithField("target", g.Board.Target).Info("New game")
}

// HaltWaves останавливает волны после поражения.
func (g *Game) HaltWaves() {
	g.WaveSystem.Halt()
}

// SelectTile переключает выбор гекса для постройки. Пятиугольник или
// неизвестный тайл сбрасывает выбор.
func (g *Game) SelectTile(id goldberg.TileID) {
	gs := g.ECS.GameState
	tile := g.Board.Sphere.Tile(id)
	if tile == nil || !tile.IsHexagon() {
		gs.Selected = goldberg.NoTile
		return
	}
	if gs.Selected == id {
		gs.Selected = goldberg.NoTile
		return
	}
	gs.Selected = id
}

func (g *Game) ClearSelection() {
	g.ECS.GameState.Selected = goldberg.NoTile
}

func (g *Game) Selected() goldberg.TileID { return g.ECS.GameState.Selected }

// Hover запоминает тайл под курсором; NoTile — курсор вне глобуса.
func (g *Game) Hover(id goldberg.TileID) {
	if g.Board.Sphere.Tile(id) == nil {
		id = goldberg.NoTile
	}
	g.hovered = id
}

func (g *Game) Hovered() goldberg.TileID { return g.hovered }

func (g *Game) TogglePause() {
	g.ECS.GameState.Paused = !g.ECS.GameState.Paused
}

func (g *Game) IsPaused() bool { return g.ECS.GameState.Paused }

// CycleSpeed переключает скорость игры по кругу ×1 → ×2 → ×4.
func (g *Game) CycleSpeed() {
	gs := g.ECS.GameState
	gs.SpeedIndex = (gs.SpeedIndex + 1) % len(config.GameSpeeds)
}

func (g *Game) Speed() float64 {
	idx := g.ECS.GameState.SpeedIndex
	if idx < 0 || idx >= len(config.GameSpeeds) {
		return 1
	}
	return config.GameSpeeds[idx]
}

func (g *Game) Outcome() component.Outcome { return g.ECS.GameState.Outcome }
