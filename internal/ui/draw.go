// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный шрифт для всего HUD.
var DefaultFace font.Face = basicfont.Face7x13

var whiteImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// point — вершина многоугольника в экранных координатах.
type point struct{ X, Y float32 }

// drawPolygon заливает и обводит выпуклый многоугольник.
func drawPolygon(dst *ebiten.Image, pts []point, fill, border color.Color, borderWidth float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, fill)
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if borderWidth <= 0 {
		return
	}
	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{
		Width:    borderWidth,
		LineJoin: vector.LineJoinRound,
	})
	tint(vs, border)
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func tint(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
