// internal/app/status.go
package app

import (
	"fmt"

	"go-globe-defense/internal/component"
	"go-globe-defense/internal/system"
	"go-globe-defense/pkg/goldberg"
)

// Build menu prompts.
const (
	PromptSelectHex   = "Select a hex to build."
	PromptTowerExists = "Tower already built on this hex."
	PromptBuild       = "Build a tower on the selected hex."
)

// Status — всё, что показывает HUD.
type Status struct {
	Wave        system.WaveStatus
	WaveLabel   string
	TimerLabel  string
	BaseHealth  int
	Outcome     component.Outcome
	Selected    goldberg.TileID
	BuildPrompt string
	CanBuild    bool
	Towers      int
	Enemies     int
	Paused      bool
	Speed       float64
	SpeedIndex  int
}

func (g *Game) Status() Status {
	gs := g.ECS.GameState
	wave := g.WaveSystem.Status()
	st := Status{
		Wave:       wave,
		WaveLabel:  WaveLabel(wave),
		TimerLabel: TimerLabel(wave),
		BaseHealth: gs.BaseHealth,
		Outcome:    gs.Outcome,
		Selected:   gs.Selected,
		Towers:     len(g.ECS.Towers),
		Enemies:    len(g.ECS.Enemies),
		Paused:     gs.Paused,
		Speed:      g.Speed(),
		SpeedIndex: gs.SpeedIndex,
	}

	switch {
	case gs.Selected == goldberg.NoTile:
		st.BuildPrompt = PromptSelectHex
	case g.Board.Sphere.IsOccupied(gs.Selected):
		st.BuildPrompt = PromptTowerExists
	default:
		st.BuildPrompt = PromptBuild
		st.CanBuild = gs.Outcome == component.OutcomeNone
	}
	return st
}

// WaveLabel — счётчик волн для HUD.
func WaveLabel(w system.WaveStatus) string {
	switch {
	case w.Phase == component.PhaseComplete:
		return fmt.Sprintf("Wave %d / %d - Complete", w.TotalWaves, w.TotalWaves)
	case w.WaveNumber <= 0:
		return fmt.Sprintf("Preparing Wave 1 / %d", w.TotalWaves)
	case w.Phase.InProgress():
		if w.EnemiesRemaining > 0 {
			return fmt.Sprintf("Wave %d / %d - %d inbound", w.WaveNumber, w.TotalWaves, w.EnemiesRemaining)
		}
		return fmt.Sprintf("Wave %d / %d - Engaged", w.WaveNumber, w.TotalWaves)
	case w.Phase == component.PhaseBreak && w.SecondsToNextWave > 0:
		return fmt.Sprintf("Wave %d / %d - Cleared", w.WaveNumber, w.TotalWaves)
	}
	return fmt.Sprintf("Wave %d / %d", w.WaveNumber, w.TotalWaves)
}

// TimerLabel — отсчёт до следующей волны.
func TimerLabel(w system.WaveStatus) string {
	switch {
	case w.Phase == component.PhaseComplete:
		return "Time Until Next Wave: Complete"
	case w.Phase.InProgress():
		return "Time Until Next Wave: Wave In Progress"
	case w.SecondsToNextWave > 0:
		return fmt.Sprintf("Time Until Next Wave: %.1fs", w.SecondsToNextWave)
	}
	return "Time Until Next Wave: Ready"
}

// MenuActionLabel — подпись главной кнопки меню.
func MenuActionLabel(started bool) string {
	if started {
		return "New Game"
	}
	return "Start Game"
}

// OutcomeLabel — заголовок экрана конца игры; пусто, пока партия идёт.
func OutcomeLabel(o component.Outcome) string {
	switch o {
	case component.OutcomeWon:
		return "Globe Defended"
	case component.OutcomeLost:
		return "Base Destroyed"
	}
	return ""
}
