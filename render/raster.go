package render

import (
	"image/color"
	"math"

	"github.com/milk9111/vibeshowdown/common"
)

// Cell is one character cell of a Raster.
type Cell struct {
	Rune rune
	FG   color.NRGBA
	BG   color.NRGBA
}

// Raster paints frames onto a coarse grid of cells by sampling each cell's
// center. It backs the terminal host and doubles as a headless renderer.
type Raster struct {
	Cols, Rows    int
	Width, Height float64
	cells         []Cell
}

func NewRaster(cols, rows int, width, height float64) *Raster {
	r := &Raster{Width: width, Height: height}
	r.Resize(cols, rows)
	return r
}

// Resize changes the grid size and clears it.
func (r *Raster) Resize(cols, rows int) {
	r.Cols = max(cols, 0)
	r.Rows = max(rows, 0)
	r.cells = make([]Cell, r.Cols*r.Rows)
	r.Clear()
}

func (r *Raster) Clear() {
	for i := range r.cells {
		r.cells[i] = Cell{Rune: ' ', FG: White, BG: Black}
	}
}

// At returns the cell at col,row. Out-of-range lookups return a zero Cell.
func (r *Raster) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return Cell{}
	}
	return r.cells[row*r.Cols+col]
}

// Draw clears the grid and paints f back to front.
func (r *Raster) Draw(f Frame) {
	r.Clear()
	if r.Cols == 0 || r.Rows == 0 {
		return
	}
	for _, p := range f.Primitives {
		switch p.Shape {
		case ShapeText:
			r.text(p)
		default:
			r.fill(p)
		}
	}
}

func (r *Raster) cellW() float64 { return r.Width / float64(r.Cols) }
func (r *Raster) cellH() float64 { return r.Height / float64(r.Rows) }

func (r *Raster) fill(p Primitive) {
	minX, minY, maxX, maxY := bounds(p)
	c0 := max(int(math.Floor(minX/r.cellW())), 0)
	c1 := min(int(math.Ceil(maxX/r.cellW())), r.Cols-1)
	r0 := max(int(math.Floor(minY/r.cellH())), 0)
	r1 := min(int(math.Ceil(maxY/r.cellH())), r.Rows-1)

	for row := r0; row <= r1; row++ {
		py := (float64(row) + 0.5) * r.cellH()
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * r.cellW()
			if !contains(p, px, py) {
				continue
			}
			cell := &r.cells[row*r.Cols+col]
			cell.BG = blend(cell.BG, p.Color)
			cell.Rune = ' '
		}
	}
}

func (r *Raster) text(p Primitive) {
	runes := []rune(p.Text)
	row := int(p.Y / r.cellH())
	if row < 0 || row >= r.Rows {
		return
	}
	start := int(p.X/r.cellW()) - len(runes)/2
	for i, ch := range runes {
		col := start + i
		if col < 0 || col >= r.Cols {
			continue
		}
		cell := &r.cells[row*r.Cols+col]
		cell.Rune = ch
		cell.FG = p.Color
	}
}

func bounds(p Primitive) (minX, minY, maxX, maxY float64) {
	if p.Shape == ShapeCircle {
		return p.X - p.R, p.Y - p.R, p.X + p.R, p.Y + p.R
	}
	return p.X, p.Y, p.X + p.W, p.Y + p.H
}

func contains(p Primitive, px, py float64) bool {
	switch p.Shape {
	case ShapeRect:
		return px >= p.X && px < p.X+p.W && py >= p.Y && py < p.Y+p.H
	case ShapeEllipse:
		if p.W <= 0 || p.H <= 0 {
			return false
		}
		rx, ry := p.W/2, p.H/2
		dx, dy := (px-p.X-rx)/rx, (py-p.Y-ry)/ry
		return dx*dx+dy*dy <= 1
	case ShapeCircle:
		dx, dy := px-p.X, py-p.Y
		return dx*dx+dy*dy <= p.R*p.R
	}
	return false
}

// blend composites src over dst using src's alpha.
func blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 0xff {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(common.Lerp(float64(d), float64(s), a)))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}
