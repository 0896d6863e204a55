package mapeditor

import "math"

// CoordinateMapper converts surface coordinates (pixels, terminal cells) to
// grid cells. CellAt must clamp into the grid.
type CoordinateMapper interface {
	CellAt(x, y float64) (row, col int)
	CellOrigin(row, col int) (x, y float64)
}

// BoxMapper splits a bounding box into GridSize×GridSize equal cells.
type BoxMapper struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoxMapper) cellSize() (w, h float64) {
	w, h = b.Width/GridSize, b.Height/GridSize
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

func (b BoxMapper) CellAt(x, y float64) (row, col int) {
	w, h := b.cellSize()
	col = clamp(int(math.Floor((x - b.Left) / w)))
	row = clamp(int(math.Floor((y - b.Top) / h)))
	return row, col
}

func (b BoxMapper) CellOrigin(row, col int) (x, y float64) {
	w, h := b.cellSize()
	return b.Left + float64(col)*w, b.Top + float64(row)*h
}

// DefaultSurface matches the 400px square map container.
var DefaultSurface = BoxMapper{Width: 400, Height: 400}
