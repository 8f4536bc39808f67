// internal/system/state.go
package system

import (
	"go-globe-defense/internal/component"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/entity"
	"go-globe-defense/internal/event"
	"go-globe-defense/internal/interfaces"
	"go-globe-defense/pkg/logger"
)

// StateSystem ведёт здоровье базы и итог партии.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	damagePerEnemy  int
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		damagePerEnemy:  config.DamagePerEnemy,
	}
	eventDispatcher.Subscribe(event.EnemyReachedEnd, ss)
	eventDispatcher.Subscribe(event.WavesCompleted, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyReachedEnd:
		s.damageBase()
	case event.WavesCompleted:
		data, _ := e.Data.(event.WaveData)
		if data.Halted {
			logger.Log.WithField("wave", data.Number).Warn("Waves halted, outcome left open")
			return
		}
		s.win()
	}
}

func (s *StateSystem) damageBase() {
	gs := s.ecs.GameState
	if gs.Outcome != component.OutcomeNone {
		return
	}
	gs.BaseHealth -= s.damagePerEnemy
	if gs.BaseHealth < 0 {
		gs.BaseHealth = 0
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BaseDamaged, Data: event.BaseData{Health: gs.BaseHealth}})

	if gs.BaseHealth == 0 {
		gs.Outcome = component.OutcomeLost
		logger.Log.Info("Base destroyed, game over")
		s.gameContext.HaltWaves()
		s.gameContext.ClearSelection()
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

func (s *StateSystem) win() {
	gs := s.ecs.GameState
	if gs.Outcome != component.OutcomeNone {
		return
	}
	gs.Outcome = component.OutcomeWon
	logger.Log.WithField("health", gs.BaseHealth).Info("All waves survived")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
}

// Reset восстанавливает здоровье базы для новой партии.
func (s *StateSystem) Reset() {
	gs := s.ecs.GameState
	gs.BaseHealth = config.BaseHealth
	gs.Outcome = component.OutcomeNone
}

func (s *StateSystem) Current() component.Outcome {
	return s.ecs.GameState.Outcome
}
