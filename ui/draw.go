package ui

import (
	"image"
	"image/color"
	"sync"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/widgets/theme"
)

var textFace = text.NewGoXFace(basicfont.Face7x13)

// whiteTexture backs DrawTriangles calls. The 1px sub-image of a 3x3 white
// image avoids color bleeding from texture filtering at triangle edges.
// Created lazily so importing the package never touches the graphics stack.
var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteTexture() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

func fillRect(dst *ebiten.Image, r Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), clr, true)
}

func strokeRect(dst *ebiten.Image, r Rectangle, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), 1, clr, true)
}

// drawSurface draws an overlay or widget surface: filled background with a
// one pixel border.
func drawSurface(dst *ebiten.Image, r Rectangle, th *theme.Theme) {
	fillRect(dst, r, color.RGBA(th.Surface))
	strokeRect(dst, r, color.RGBA(th.Border))
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, textFace, op)
}

// drawTextCentered centers s in r.
func drawTextCentered(dst *ebiten.Image, s string, r Rectangle, clr color.Color) {
	w, h := text.Measure(s, textFace, 0)
	drawText(dst, s, r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2, clr)
}

func textSize(s string) (w, h float64) {
	return text.Measure(s, textFace, 0)
}

// fillPolygon triangulates the closed ring (xs, ys) with earcut and renders
// it in a single DrawTriangles call. Degenerate rings draw nothing.
func fillPolygon(dst *ebiten.Image, xs, ys []float64, clr color.NRGBA) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}

	flat := make([]float64, 0, len(xs)*2)
	for i := range xs {
		flat = append(flat, xs[i], ys[i])
	}
	indices, err := earcut.Earcut(flat, nil, 2)
	if err != nil || len(indices) < 3 {
		return
	}

	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255

	vs := make([]ebiten.Vertex, len(xs))
	for i := range xs {
		vs[i] = ebiten.Vertex{
			DstX: float32(xs[i]), DstY: float32(ys[i]),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, len(indices))
	for i, idx := range indices {
		is[i] = uint16(idx)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteTexture(), op)
}

// fillVGradient fills r with a vertical gradient from top to bottom.
func fillVGradient(dst *ebiten.Image, r Rectangle, top, bottom color.NRGBA) {
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
	}

	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
	setVertex(&vs[0], x0, y0, top)
	setVertex(&vs[1], x1, y0, top)
	setVertex(&vs[2], x1, y1, bottom)
	setVertex(&vs[3], x0, y1, bottom)

	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, whiteTexture(), &ebiten.DrawTrianglesOptions{})
}

func setVertex(v *ebiten.Vertex, x, y float32, clr color.NRGBA) {
	v.DstX = x
	v.DstY = y
	v.ColorR = float32(clr.R) / 255
	v.ColorG = float32(clr.G) / 255
	v.ColorB = float32(clr.B) / 255
	v.ColorA = float32(clr.A) / 255
}
