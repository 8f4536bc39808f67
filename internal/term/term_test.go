package term_test

import (
	"strings"
	"testing"

	"go-globe-defense/internal/app"
	"go-globe-defense/internal/component"
	"go-globe-defense/internal/term"
	"go-globe-defense/pkg/goldberg"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenW = 80
	screenH = 24
)

func newApp(t *testing.T) (*term.App, *app.Game, tcell.SimulationScreen) {
	t.Helper()
	opts := app.DefaultOptions()
	opts.Seed = 7
	opts.Frequency = 3
	g, err := app.NewGame(opts)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, screenH)

	return term.NewApp(screen, g), g, screen
}

func lookAt(a *term.App, g *app.Game, id goldberg.TileID) {
	a.Renderer().Camera.LookAt(g.Board.Sphere.Tile(id).Normal)
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func line(screen tcell.SimulationScreen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

// nearCenter ищет символ в квадрате 3x3 вокруг центра глобуса.
func nearCenter(screen tcell.SimulationScreen, want rune) bool {
	cx, cy := screenW/2, (screenH-term.HUDLines)/2
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			if runeAt(screen, x, y) == want {
				return true
			}
		}
	}
	return false
}

// hexOffRoute — гекс вне подсветки маршрутов.
func hexOffRoute(t *testing.T, g *app.Game) goldberg.TileID {
	t.Helper()
	for _, tile := range g.Board.Sphere.Tiles {
		if tile.IsHexagon() && g.ECS.Wave.Highlight.Role(tile.ID) == component.RoleNone {
			return tile.ID
		}
	}
	t.Fatal("no free hexagon")
	return goldberg.NoTile
}

func TestGlyph(t *testing.T) {
	hex := &goldberg.Tile{Sides: 6}
	pent := &goldberg.Tile{Sides: 5}

	tests := []struct {
		name     string
		tile     *goldberg.Tile
		role     component.RouteRole
		selected bool
		want     rune
	}{
		{"hexagon", hex, component.RoleNone, false, term.GlyphHexagon},
		{"pentagon", pent, component.RoleNone, false, term.GlyphPentagon},
		{"target", pent, component.RoleTarget, false, term.GlyphTarget},
		{"spawn", pent, component.RoleSpawn, false, term.GlyphSpawn},
		{"path", hex, component.RolePath, false, term.GlyphPath},
		{"selected wins", hex, component.RolePath, true, term.GlyphSelected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := term.Glyph(tt.tile, tt.role, tt.selected, false, 1)
			assert.Equal(t, tt.want, got)
		})
	}

	_, plain := term.Glyph(hex, component.RoleNone, false, false, 1)
	_, hovered := term.Glyph(hex, component.RoleNone, false, true, 1)
	assert.NotEqual(t, plain, hovered)
}

func TestRenderer_DrawsTargetAndHUD(t *testing.T) {
	a, g, screen := newApp(t)
	lookAt(a, g, g.Board.Target)
	a.Tick(0)

	globeH := screenH - term.HUDLines
	assert.Equal(t, term.GlyphTarget, runeAt(screen, screenW/2, globeH/2))
	assert.Equal(t, ' ', runeAt(screen, 0, 0), "corner is empty space")

	assert.Equal(t, "Preparing Wave 1 / 10 | Time Until Next Wave: 10.0s", line(screen, globeH))
	assert.Contains(t, line(screen, globeH+1), "Base 100/100")
	assert.Equal(t, app.PromptSelectHex, line(screen, globeH+2))
}

func TestApp_SelectAndBuild(t *testing.T) {
	a, g, screen := newApp(t)
	hex := hexOffRoute(t, g)
	lookAt(a, g, hex)

	require.True(t, a.Apply(term.CmdSelect))
	assert.Equal(t, hex, g.Selected())
	assert.Equal(t, hex, g.Hovered())

	require.True(t, a.Apply(term.CmdBuild))
	assert.Len(t, g.ECS.Towers, 1)
	assert.True(t, g.Board.Sphere.IsOccupied(hex))

	a.Tick(0)
	globeH := screenH - term.HUDLines
	assert.True(t, nearCenter(screen, term.GlyphTower), "tower drawn under the crosshair")
	assert.Equal(t, app.PromptTowerExists, line(screen, globeH+2))

	// Повторный выбор того же гекса снимает выделение.
	a.Apply(term.CmdSelect)
	assert.Equal(t, goldberg.NoTile, g.Selected())
}

func TestApp_Commands(t *testing.T) {
	a, g, _ := newApp(t)
	cam := a.Renderer().Camera

	yaw := cam.Yaw
	a.Apply(term.CmdRotateRight)
	assert.NotEqual(t, yaw, cam.Yaw)

	d := cam.Distance
	a.Apply(term.CmdZoomIn)
	assert.Less(t, cam.Distance, d)

	a.Apply(term.CmdPause)
	assert.True(t, g.IsPaused())
	a.Apply(term.CmdPause)
	assert.False(t, g.IsPaused())

	a.Apply(term.CmdSpeed)
	assert.Equal(t, 2.0, g.Speed())

	assert.True(t, a.Apply(term.CmdNone))
	assert.False(t, a.Apply(term.CmdQuit))
}

func TestApp_MouseClickSelects(t *testing.T) {
	a, g, _ := newApp(t)
	hex := hexOffRoute(t, g)
	lookAt(a, g, hex)

	globeH := screenH - term.HUDLines
	a.Point(screenW/2, globeH/2, false)
	assert.Equal(t, hex, g.Hovered())
	assert.Equal(t, goldberg.NoTile, g.Selected())

	a.Point(screenW/2, globeH/2, true)
	assert.Equal(t, hex, g.Selected())

	// Клик мимо глобуса снимает выбор.
	a.Point(0, 0, true)
	assert.Equal(t, goldberg.NoTile, g.Selected())
	assert.Equal(t, goldberg.NoTile, g.Hovered())
}

func TestApp_PausedAndOutcomeBanner(t *testing.T) {
	a, g, screen := newApp(t)
	globeH := screenH - term.HUDLines

	a.Apply(term.CmdPause)
	a.Tick(1)
	assert.Equal(t, "PAUSED", line(screen, globeH+2))
	assert.Contains(t, line(screen, globeH), "10.0s", "paused game does not advance")

	g.ECS.GameState.Outcome = component.OutcomeLost
	a.Tick(0)
	assert.Equal(t, "Base Destroyed - press n for a new game", line(screen, globeH+2))
}
