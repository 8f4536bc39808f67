// cmd/game/main.go
package main

import (
	"os"
	"time"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/sound"
	"go-globe-defense/internal/state"
	"go-globe-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger.Init()

	opts, err := app.OptionsFromEnv(config.GlobeFrequency)
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	game, err := app.NewGame(opts)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	sounds := sound.NewSoundManager(sound.SampleRate)
	if err := sounds.Initialize(); err != nil {
		// Без звука играть можно.
		logger.Log.WithError(err).Warn("Audio initialization failed")
	}
	sounds.Subscribe(game.EventDispatcher)
	defer sounds.Cleanup()

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, game, nil))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Goldberg Globe Defense")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Error("Game loop failed")
		sounds.Cleanup()
		os.Exit(1)
	}
}
