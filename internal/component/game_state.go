package component

import "go-globe-defense/pkg/goldberg"

// Outcome — итог партии.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// GameState — компонент для хранения состояния игры
type GameState struct {
	BaseHealth int
	Outcome    Outcome
	Selected   goldberg.TileID // выбранный гекс для постройки
	Paused     bool
	SpeedIndex int
}
