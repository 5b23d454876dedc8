package pattern

import (
	"math"

	"plotfill/internal/geom"
)

// Peano fills with the 3x3 subdivision Peano curve. Like Hilbert but
// with a denser, squarer weave.
func Peano(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	size := math.Max(ctx.Width, ctx.Height)
	depth := int(math.Ceil(math.Log(size/spacing) / math.Log(3)))
	if depth < 1 {
		depth = 1
	} else if depth > 5 {
		depth = 5
	}
	gridSize := 1
	for i := 0; i < depth; i++ {
		gridSize *= 3
	}
	cellSize := size / float64(gridSize)

	cells := make([][2]int, 0, gridSize*gridSize)
	peanoRecurse(0, 0, gridSize, false, false, &cells)

	pts := make([][2]float64, 0, len(cells))
	for _, c := range cells {
		x := ctx.Bounds.MinX + (float64(c[0])+0.5)*cellSize
		y := ctx.Bounds.MinY + (float64(c[1])+0.5)*cellSize
		rx, ry := ctx.Rotate(x, y)
		pts = append(pts, [2]float64{rx, ry})
	}

	return connectPoints(pts, p)
}

// peanoRecurse walks the nine sub-squares in serpentine order. The
// middle row toggles the horizontal flip for its children, the middle
// column the vertical one; that keeps consecutive cells adjacent.
func peanoRecurse(x, y, size int, flipX, flipY bool, cells *[][2]int) {
	if size == 1 {
		*cells = append(*cells, [2]int{x, y})
		return
	}
	s := size / 3
	for rowIdx := 0; rowIdx < 3; rowIdx++ {
		row := rowIdx
		if flipY {
			row = 2 - rowIdx
		}
		for colIdx := 0; colIdx < 3; colIdx++ {
			goRight := (rowIdx%2 == 0) != flipX
			col := colIdx
			if !goRight {
				col = 2 - colIdx
			}
			peanoRecurse(x+col*s, y+row*s, s, flipX != (row == 1), flipY != (col == 1), cells)
		}
	}
}
