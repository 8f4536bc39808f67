// cmd/globe-term/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/sound"
	"go-globe-defense/internal/term"
	"go-globe-defense/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "globe-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Экран принадлежит tcell, поэтому логи идут в файл (или никуда).
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("GLOBE_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.InitWithOutput(logOut)

	opts, err := app.OptionsFromEnv(config.TerminalFrequency)
	if err != nil {
		return err
	}
	game, err := app.NewGame(opts)
	if err != nil {
		return err
	}

	sounds := sound.NewSoundManager(sound.SampleRate)
	sounds.Muted = config.GetEnv("GLOBE_MUTE", "") != ""
	if !sounds.Muted {
		if err := sounds.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("Audio initialization failed")
		}
	}
	sounds.Subscribe(game.EventDispatcher)
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.NewApp(screen, game).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
