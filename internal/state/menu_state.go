// internal/state/menu_state.go
package state

import (
	"image"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const title = "Goldberg Globe Defense"

// MenuState — главное меню. До первой партии кнопка называется
// «Start Game», после — «New Game»; Escape возвращает в начатую партию.
type MenuState struct {
	sm          *StateMachine
	game        *app.Game
	resume      *GameState // nil, пока партия не начата
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, game *app.Game, resume *GameState) *MenuState {
	started := resume != nil
	btnWidth, btnHeight := 220, 50
	x := (config.ScreenWidth - btnWidth) / 2
	y := config.ScreenHeight/2 - btnHeight
	return &MenuState{
		sm:          sm,
		game:        game,
		resume:      resume,
		startButton: ui.NewButton(image.Rect(x, y, x+btnWidth, y+btnHeight), app.MenuActionLabel(started)),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if m.resume != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.SetState(m.resume)
		return
	}

	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.IsClicked(x, y)
	}
	if !start {
		return
	}
	if m.resume != nil {
		m.game.Reset()
		m.sm.SetState(m.resume)
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.game))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	bounds := text.BoundString(ui.DefaultFace, title)
	text.Draw(screen, title, ui.DefaultFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-120, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	m.startButton.Draw(screen, mx, my)
}

func (m *MenuState) Exit() {}
