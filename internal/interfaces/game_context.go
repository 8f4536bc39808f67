// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системы могут потребовать от партии, не зная о Game.
type GameContext interface {
	HaltWaves()
	ClearSelection()
}
