// pkg/render/globe_renderer.go
package render

import (
	"image/color"
	"sort"

	"go-globe-defense/internal/entity"
	"go-globe-defense/pkg/camera"
	"go-globe-defense/pkg/goldberg"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene — всё, что нужно для кадра.
type Scene struct {
	Sphere   *goldberg.Sphere
	Camera   *camera.Camera
	ECS      *entity.ECS
	Selected goldberg.TileID
	Hovered  goldberg.TileID
}

type visibleTile struct {
	tile  *goldberg.Tile
	depth float64
	light float64
}

// GlobeRenderer рисует глобус плоскими многоугольниками с сортировкой по глубине.
type GlobeRenderer struct {
	palette  Palette
	light    goldberg.Vec3
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	visible  []visibleTile
}

func NewGlobeRenderer(palette Palette) *GlobeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &GlobeRenderer{
		palette:  palette,
		light:    goldberg.Vec3{X: -0.4, Y: 0.6, Z: 0.7}.Normalize(),
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 24),
		fillIs:   make([]uint16, 0, 36),
		strokeVs: make([]ebiten.Vertex, 0, 48),
		strokeIs: make([]uint16, 0, 72),
	}
}

func (r *GlobeRenderer) Draw(screen *ebiten.Image, scene Scene) {
	screen.Fill(r.palette.Background)
	r.drawHalo(screen, scene)

	r.collectVisible(scene)
	highlight := &scene.ECS.Wave.Highlight
	for _, v := range r.visible {
		role := highlight.Role(v.tile.ID)
		fill, border := r.palette.TileColors(v.tile, role, v.tile.ID == scene.Selected, v.tile.ID == scene.Hovered)
		r.drawTile(screen, scene, v.tile, Shade(fill, v.light), border)
	}

	r.drawTowers(screen, scene)
	r.drawEnemies(screen, scene)
	r.drawShots(screen, scene)
}

// collectVisible отбирает тайлы, обращённые к камере, от дальних к ближним.
func (r *GlobeRenderer) collectVisible(scene Scene) {
	r.visible = r.visible[:0]
	eye := scene.Camera.Eye()
	for _, t := range scene.Sphere.Tiles {
		top := t.SurfacePoint(scene.Sphere.Thickness)
		if !scene.Camera.Facing(top, t.Normal) {
			continue
		}
		r.visible = append(r.visible, visibleTile{
			tile:  t,
			depth: top.DistanceSqTo(eye),
			light: 0.35 + 0.65*max(0, t.Normal.Dot(r.light)),
		})
	}
	sort.Slice(r.visible, func(i, j int) bool { return r.visible[i].depth > r.visible[j].depth })
}

func (r *GlobeRenderer) drawHalo(screen *ebiten.Image, scene Scene) {
	cx, cy, depth, ok := scene.Camera.Project(goldberg.Vec3{})
	if !ok {
		return
	}
	radius := r.screenRadius(scene, (scene.Sphere.Radius+scene.Sphere.Thickness)*1.08, depth)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), r.palette.Halo, true)
}

func (r *GlobeRenderer) drawTile(target *ebiten.Image, scene Scene, tile *goldberg.Tile, fill, border color.RGBA) {
	path := vector.Path{}
	for i, p := range tile.WorldRing(scene.Sphere.Thickness) {
		x, y, _, ok := scene.Camera.Project(p)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.palette.StrokeWidth,
	})
	paintVertices(r.strokeVs, border)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

func (r *GlobeRenderer) drawTowers(screen *ebiten.Image, scene Scene) {
	for _, id := range scene.ECS.TowerIDs() {
		tower := scene.ECS.Towers[id]
		pos, ok := scene.ECS.Positions[id]
		if !ok {
			continue
		}
		tile := scene.Sphere.Tile(tower.Tile)
		if tile == nil || !scene.Camera.Facing(pos.Vec3, tile.Normal) {
			continue
		}
		x, y, depth, ok := scene.Camera.Project(pos.Vec3)
		if !ok {
			continue
		}
		radius := float32(r.screenRadius(scene, tower.Radius, depth))
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, r.palette.Tower, true)
		vector.StrokeCircle(screen, float32(x), float32(y), radius, r.palette.StrokeWidth, r.palette.TowerBorder, true)
	}
}

func (r *GlobeRenderer) drawEnemies(screen *ebiten.Image, scene Scene) {
	for _, id := range scene.ECS.EnemyIDs() {
		pos, ok := scene.ECS.Positions[id]
		if !ok || !scene.Camera.Facing(pos.Vec3, pos.Normalize()) {
			continue
		}
		x, y, depth, ok := scene.Camera.Project(pos.Vec3)
		if !ok {
			continue
		}
		c := r.palette.Enemy
		radius := scene.Sphere.BaseHexRadius() * 0.4
		if rend, ok := scene.ECS.Renderables[id]; ok {
			c, radius = rend.Color, rend.Radius*0.5
		}
		if h, ok := scene.ECS.Healths[id]; ok && h.Max > 0 {
			c = Shade(c, 0.5+0.5*h.Value/h.Max)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r.screenRadius(scene, radius, depth)), c, true)
	}
}

func (r *GlobeRenderer) drawShots(screen *ebiten.Image, scene Scene) {
	for _, shot := range scene.ECS.Shots {
		x0, y0, _, ok0 := scene.Camera.Project(shot.From)
		x1, y1, _, ok1 := scene.Camera.Project(shot.To)
		if !ok0 || !ok1 || !scene.Camera.Facing(shot.To, shot.To.Normalize()) {
			continue
		}
		c := WithAlpha(shot.Color, shot.Opacity())
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, c, true)
	}
}

// screenRadius переводит мировой радиус на глубине depth в пиксели.
func (r *GlobeRenderer) screenRadius(scene Scene, worldRadius, depth float64) float64 {
	return worldRadius * scene.Camera.PixelsPerUnit(depth)
}
