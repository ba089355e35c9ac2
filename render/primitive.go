// Package render turns battle state into a flat list of drawing primitives.
// Backends (ebiten, the terminal raster) only ever see a Frame.
package render

import "image/color"

type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeEllipse
	ShapeCircle
	ShapeText
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapeCircle:
		return "circle"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Primitive is one draw call. Rects and ellipses use X,Y as the top-left
// corner of a W×H box; circles and text are centered on X,Y.
type Primitive struct {
	Shape Shape
	X, Y  float64
	W, H  float64
	R     float64
	Text  string
	Size  float64
	Color color.NRGBA
}

// Frame is an ordered list of primitives, painted back to front.
type Frame struct {
	Primitives []Primitive
}

func (f *Frame) Rect(x, y, w, h float64, c color.NRGBA) {
	f.Primitives = append(f.Primitives, Primitive{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (f *Frame) Ellipse(x, y, w, h float64, c color.NRGBA) {
	f.Primitives = append(f.Primitives, Primitive{Shape: ShapeEllipse, X: x, Y: y, W: w, H: h, Color: c})
}

func (f *Frame) Circle(cx, cy, r float64, c color.NRGBA) {
	f.Primitives = append(f.Primitives, Primitive{Shape: ShapeCircle, X: cx, Y: cy, R: r, Color: c})
}

func (f *Frame) Text(s string, cx, cy, size float64, c color.NRGBA) {
	f.Primitives = append(f.Primitives, Primitive{Shape: ShapeText, X: cx, Y: cy, Text: s, Size: size, Color: c})
}

// Count returns how many primitives have the given shape.
func (f Frame) Count(s Shape) int {
	n := 0
	for _, p := range f.Primitives {
		if p.Shape == s {
			n++
		}
	}
	return n
}

// Texts returns the strings of every text primitive in paint order.
func (f Frame) Texts() []string {
	var out []string
	for _, p := range f.Primitives {
		if p.Shape == ShapeText {
			out = append(out, p.Text)
		}
	}
	return out
}
