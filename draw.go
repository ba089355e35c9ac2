package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/vibeshowdown/render"
)

const discSize = 64

var (
	discOnce sync.Once
	disc     *ebiten.Image

	textFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// disc is a white filled circle that gets scaled and tinted into ellipses.
func discImage() *ebiten.Image {
	discOnce.Do(func() {
		disc = ebiten.NewImage(discSize, discSize)
		vector.FillCircle(disc, discSize/2, discSize/2, discSize/2, color.White, true)
	})
	return disc
}

// DrawFrame paints every primitive in f onto dst in order.
func DrawFrame(dst *ebiten.Image, f render.Frame) {
	for _, p := range f.Primitives {
		switch p.Shape {
		case render.ShapeRect:
			vector.FillRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Color, false)
		case render.ShapeCircle:
			vector.FillCircle(dst, float32(p.X), float32(p.Y), float32(p.R), p.Color, true)
		case render.ShapeEllipse:
			drawEllipse(dst, p)
		case render.ShapeText:
			drawText(dst, p)
		}
	}
}

func drawEllipse(dst *ebiten.Image, p render.Primitive) {
	if p.W <= 0 || p.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.W/discSize, p.H/discSize)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(p.Color)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(discImage(), op)
}

func drawText(dst *ebiten.Image, p render.Primitive) {
	scale := p.Size / float64(basicfont.Face7x13.Height)
	if scale <= 0 {
		scale = 1
	}
	op := &ebtext.DrawOptions{}
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(p.Color)
	ebtext.Draw(dst, p.Text, textFace, op)
}
