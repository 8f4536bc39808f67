// internal/term/renderer.go
package term

import (
	"fmt"
	"math"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/config"
	"go-globe-defense/pkg/camera"
	"go-globe-defense/pkg/goldberg"

	"github.com/gdamore/tcell/v2"
)

// HUDLines — строки под глобусом.
const HUDLines = 4

const terminalFOV = 0.95

var (
	hudStyle    = tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
	promptStyle = tcell.StyleDefault.Foreground(rgb(config.ActiveHexFillColor))
	alertStyle  = tcell.StyleDefault.Foreground(rgb(config.RouteTargetColor)).Bold(true)
	emptyStyle  = tcell.StyleDefault.Background(rgb(config.BackgroundColor))
)

// Renderer рисует глобус символами: каждая клетка — луч из камеры.
// Клетка терминала вдвое выше, чем шире, поэтому камера растягивает x.
type Renderer struct {
	Camera *camera.Camera
	light  goldberg.Vec3
}

func NewRenderer(sphere *goldberg.Sphere) *Renderer {
	cam := camera.New(sphere.Radius*config.CameraDistanceFactor, 80, 24-HUDLines)
	cam.FOV = terminalFOV
	cam.CellAspect = 2
	return &Renderer{
		Camera: cam,
		light:  goldberg.Vec3{X: -0.4, Y: 0.6, Z: 0.7}.Normalize(),
	}
}

// CellTile — тайл под клеткой (x, y) или NoTile.
func (r *Renderer) CellTile(sphere *goldberg.Sphere, x, y int) goldberg.TileID {
	return r.Camera.PickTile(sphere, float64(x)+0.5, float64(y)+0.5)
}

// Draw перерисовывает экран целиком.
func (r *Renderer) Draw(screen tcell.Screen, game *app.Game) {
	w, h := screen.Size()
	globeH := max(h-HUDLines, 1)
	r.Camera.SetViewport(float64(w), float64(globeH))
	screen.Clear()

	r.drawGlobe(screen, game, w, globeH)
	r.drawEntities(screen, game, w, globeH)
	r.drawHUD(screen, game.Status(), w, globeH)
	screen.Show()
}

func (r *Renderer) drawGlobe(screen tcell.Screen, game *app.Game, w, h int) {
	sphere := game.Board.Sphere
	highlight := &game.ECS.Wave.Highlight
	selected, hovered := game.Selected(), game.Hovered()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := r.CellTile(sphere, x, y)
			tile := sphere.Tile(id)
			if tile == nil {
				screen.SetContent(x, y, ' ', nil, emptyStyle)
				continue
			}
			light := 0.35 + 0.65*math.Max(0, tile.Normal.Dot(r.light))
			ch, style := Glyph(tile, highlight.Role(id), id == selected, id == hovered, light)
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// cell переводит мировую точку в клетку; false — точка не видна.
func (r *Renderer) cell(p goldberg.Vec3, w, h int) (int, int, bool) {
	if !r.Camera.Facing(p, p.Normalize()) {
		return 0, 0, false
	}
	fx, fy, _, ok := r.Camera.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func (r *Renderer) drawEntities(screen tcell.Screen, game *app.Game, w, h int) {
	ecs := game.ECS
	for _, shot := range ecs.Shots {
		if x, y, ok := r.cell(shot.To, w, h); ok {
			screen.SetContent(x, y, GlyphShot, nil, tcell.StyleDefault.Foreground(rgb(config.ShotColor)))
		}
	}
	for _, id := range ecs.TowerIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if x, y, ok := r.cell(pos.Vec3, w, h); ok {
			screen.SetContent(x, y, GlyphTower, nil, tcell.StyleDefault.Foreground(rgb(config.TowerBorderColor)).Background(rgb(config.TowerColor)).Bold(true))
		}
	}
	for _, id := range ecs.EnemyIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if x, y, ok := r.cell(pos.Vec3, w, h); ok {
			screen.SetContent(x, y, GlyphEnemy, nil, tcell.StyleDefault.Foreground(rgb(config.EnemyColor)).Bold(true))
		}
	}
}

func (r *Renderer) drawHUD(screen tcell.Screen, st app.Status, w, top int) {
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{fmt.Sprintf("%s | %s", st.WaveLabel, st.TimerLabel), hudStyle},
		{fmt.Sprintf("Base %d/%d | towers %d | enemies %d | x%.0f", st.BaseHealth, config.BaseHealth, st.Towers, st.Enemies, st.Speed), hudStyle},
		{st.BuildPrompt, promptStyle},
		{"arrows rotate  enter select  b build  space pause  f speed  n new  q quit", hudStyle},
	}
	if label := app.OutcomeLabel(st.Outcome); label != "" {
		lines[2].text, lines[2].style = label+" - press n for a new game", alertStyle
	} else if st.Paused {
		lines[2].text, lines[2].style = "PAUSED", alertStyle
	}
	for i, line := range lines {
		drawText(screen, 0, top+i, w, line.text, line.style)
	}
}

func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) {
	col := 0
	for _, ch := range s {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, ch, nil, style)
		col++
	}
}
