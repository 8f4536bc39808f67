// internal/term/app.go
package term

import (
	"context"
	"time"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 33 * time.Millisecond
	rotateStep    = 0.12
)

// App — терминальный фронтенд: ввод, тик симуляции и отрисовка.
// Курсор — перекрестие в центре глобуса; выбирается тайл под ним.
type App struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *Renderer
}

func NewApp(screen tcell.Screen, game *app.Game) *App {
	r := NewRenderer(game.Board.Sphere)
	r.Camera.LookAt(game.Board.Sphere.Tile(game.Board.Target).Normal)
	r.Camera.Rotate(0.6, 0.25)
	return &App{screen: screen, game: game, renderer: r}
}

func (a *App) Renderer() *Renderer { return a.renderer }

// centerTile — тайл под перекрестием.
func (a *App) centerTile() goldberg.TileID {
	w, h := a.screen.Size()
	return a.renderer.CellTile(a.game.Board.Sphere, w/2, max(h-HUDLines, 1)/2)
}

// Command — действие игрока, не зависящее от устройства ввода.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdRotateLeft
	CmdRotateRight
	CmdRotateUp
	CmdRotateDown
	CmdSelect
	CmdBuild
	CmdPause
	CmdSpeed
	CmdNewGame
	CmdZoomIn
	CmdZoomOut
)

var runeCommands = map[rune]Command{
	'q': CmdQuit,
	'h': CmdRotateLeft,
	'l': CmdRotateRight,
	'k': CmdRotateUp,
	'j': CmdRotateDown,
	'b': CmdBuild,
	' ': CmdPause,
	'p': CmdPause,
	'f': CmdSpeed,
	'n': CmdNewGame,
	'+': CmdZoomIn,
	'=': CmdZoomIn,
	'-': CmdZoomOut,
}

func commandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyLeft:
		return CmdRotateLeft
	case tcell.KeyRight:
		return CmdRotateRight
	case tcell.KeyUp:
		return CmdRotateUp
	case tcell.KeyDown:
		return CmdRotateDown
	case tcell.KeyEnter:
		return CmdSelect
	case tcell.KeyRune:
		return runeCommands[ev.Rune()]
	}
	return CmdNone
}

// HandleEvent применяет событие; false — пора выходить.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.Apply(commandFor(ev))
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.Point(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Point наводит курсор мыши на клетку; click — выбрать тайл под ней.
func (a *App) Point(x, y int, click bool) {
	tile := a.renderer.CellTile(a.game.Board.Sphere, x, y)
	a.game.Hover(tile)
	if click {
		a.game.SelectTile(tile)
	}
}

// Apply выполняет команду; false — CmdQuit.
func (a *App) Apply(cmd Command) bool {
	cam := a.renderer.Camera
	switch cmd {
	case CmdQuit:
		return false
	case CmdRotateLeft:
		cam.Rotate(-rotateStep, 0)
	case CmdRotateRight:
		cam.Rotate(rotateStep, 0)
	case CmdRotateUp:
		cam.Rotate(0, rotateStep)
	case CmdRotateDown:
		cam.Rotate(0, -rotateStep)
	case CmdSelect:
		a.game.SelectTile(a.centerTile())
	case CmdBuild:
		result := a.game.BuildOnSelected()
		logger.Log.WithField("result", result.String()).Debug("Build requested")
	case CmdPause:
		a.game.TogglePause()
	case CmdSpeed:
		a.game.CycleSpeed()
	case CmdNewGame:
		a.game.Reset()
	case CmdZoomIn:
		cam.Zoom(config.ZoomStep, a.game.Board.Sphere.Radius*1.6)
	case CmdZoomOut:
		cam.Zoom(1/config.ZoomStep, a.game.Board.Sphere.Radius)
	case CmdNone:
		return true
	}
	a.game.Hover(a.centerTile())
	return true
}

// Tick продвигает игру на deltaTime и перерисовывает экран.
func (a *App) Tick(deltaTime float64) {
	a.game.Update(deltaTime)
	a.renderer.Draw(a.screen, a.game)
}

// Run крутит цикл до выхода пользователя или отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.game.Hover(a.centerTile())

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	a.Tick(0)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
			a.renderer.Draw(a.screen, a.game)
		case now := <-ticker.C:
			a.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}
