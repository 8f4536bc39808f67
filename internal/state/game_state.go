// internal/state/game_state.go
package state

import (
	"fmt"
	"math"
	"time"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/ui"
	"go-globe-defense/pkg/camera"
	"go-globe-defense/pkg/logger"
	"go-globe-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// dragThreshold — сколько пикселей мышь должна пройти, чтобы нажатие
// считалось вращением, а не кликом.
const dragThreshold = 4

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	camera   *camera.Camera
	renderer *render.GlobeRenderer

	waveIndicator *ui.WaveIndicator
	health        *ui.BaseHealthIndicator
	buildMenu     *ui.BuildMenu
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton

	pressX, pressY int
	lastX, lastY   int
	pressed        bool
	dragging       bool
	lastClickTime  time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	sphere := game.Board.Sphere
	cam := camera.New(sphere.Radius*config.CameraDistanceFactor, config.ScreenWidth, config.ScreenHeight)
	cam.Rotate(0.4, 0.35)

	return &GameState{
		sm:            sm,
		game:          game,
		camera:        cam,
		renderer:      render.NewGlobeRenderer(render.DefaultPalette()),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 36),
		health:        ui.NewBaseHealthIndicator(config.HUDMarginX, config.ScreenHeight-80),
		buildMenu:     ui.NewBuildMenu(config.ScreenWidth-300, config.ScreenHeight-110),
		speedButton:   ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(config.PauseButtonX, config.SpeedButtonY, config.SpeedButtonSize*0.7, config.PauseButtonColor, config.PlayButtonColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewMenuState(g.sm, g.game, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.enterPause()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.game.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.game.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyB), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.build()
	}

	g.rotateWithKeys(deltaTime)
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(math.Pow(config.ZoomStep, wy), g.game.Board.Sphere.Radius*1.6)
	}
	g.handleMouse()

	g.game.Update(deltaTime)
	g.speedButton.SetState(g.game.ECS.GameState.SpeedIndex)
}

func (g *GameState) rotateWithKeys(deltaTime float64) {
	step := config.RotateSpeed * deltaTime
	var yaw, pitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		yaw -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		yaw += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		pitch += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		pitch -= step
	}
	if yaw != 0 || pitch != 0 {
		g.camera.Rotate(yaw, pitch)
	}
}

// handleMouse: перетаскивание вращает глобус, короткий клик выбирает гекс
// или нажимает кнопку.
func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.game.Hover(g.camera.PickTile(g.game.Board.Sphere, float64(x), float64(y)))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed, g.dragging = true, false
		g.pressX, g.pressY = x, y
		g.lastX, g.lastY = x, y
	}
	if g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.dragging && abs(x-g.pressX)+abs(y-g.pressY) > dragThreshold && !g.isClickOnUI(g.pressX, g.pressY) {
			g.dragging = true
		}
		if g.dragging {
			// Тянем поверхность за курсором: движение вправо поворачивает глобус вправо.
			g.camera.Rotate(-float64(x-g.lastX)*config.DragSensitivity, float64(y-g.lastY)*config.DragSensitivity)
		}
		g.lastX, g.lastY = x, y
	}
	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if !g.dragging {
			g.handleClick(x, y)
		}
		g.pressed, g.dragging = false, false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelection()
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y) || g.buildMenu.Contains(x, y)
}

func (g *GameState) handleClick(x, y int) {
	if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	switch {
	case g.speedButton.IsClicked(x, y):
		if g.speedButton.Ready(time.Now()) {
			g.game.CycleSpeed()
		}
	case g.pauseButton.IsClicked(x, y):
		if g.pauseButton.Ready(time.Now()) {
			g.enterPause()
		}
	case g.buildMenu.Contains(x, y):
		if g.buildMenu.Button.IsClicked(x, y) {
			g.build()
		}
	default:
		g.game.SelectTile(g.camera.PickTile(g.game.Board.Sphere, float64(x), float64(y)))
	}
}

func (g *GameState) build() {
	result := g.game.BuildOnSelected()
	logger.Log.WithField("result", result.String()).Debug("Build requested")
}

func (g *GameState) enterPause() {
	g.game.TogglePause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, render.Scene{
		Sphere:   g.game.Board.Sphere,
		Camera:   g.camera,
		ECS:      g.game.ECS,
		Selected: g.game.Selected(),
		Hovered:  g.game.Hovered(),
	})
	g.DrawUI(screen)
}

// DrawUI рисует HUD поверх глобуса.
func (g *GameState) DrawUI(screen *ebiten.Image) {
	status := g.game.Status()
	mx, my := ebiten.CursorPosition()

	g.waveIndicator.Draw(screen, status.Wave.WaveNumber, status.Wave.TotalWaves, status.WaveLabel, status.TimerLabel)
	g.health.Draw(screen, status.BaseHealth, config.BaseHealth)
	g.buildMenu.Sync(status.BuildPrompt, status.CanBuild)
	g.buildMenu.Draw(screen, mx, my)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if label := app.OutcomeLabel(status.Outcome); label != "" {
		bounds := text.BoundString(ui.DefaultFace, label)
		text.Draw(screen, label, ui.DefaultFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
		hint := "N - new game"
		bounds = text.BoundString(ui.DefaultFace, hint)
		text.Draw(screen, hint, ui.DefaultFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2+config.HUDLineHeight, config.TextLightColor)
	}

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x%.0f  towers: %d  enemies: %d  TPS: %.0f",
		status.Speed, status.Towers, status.Enemies, ebiten.ActualTPS()), config.HUDMarginX, config.SpeedButtonY+30)
}

func (g *GameState) Exit() {
	g.pressed, g.dragging = false, false
}

// Game — для PauseState и тестов.
func (g *GameState) Game() *app.Game { return g.game }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
