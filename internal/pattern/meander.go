package pattern

import (
	"math"

	"plotfill/internal/geom"
)

// Meander fills with a lawn-mower serpentine over a square grid,
// every cell visited once, rotated by the fill angle.
func Meander(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	size := math.Max(ctx.Width, ctx.Height)
	gridSize := int(math.Ceil(size / spacing))
	if gridSize < 3 {
		gridSize = 3
	}
	cellSize := size / float64(gridSize)

	pts := make([][2]float64, 0, gridSize*gridSize)
	for row := 0; row < gridSize; row++ {
		for c := 0; c < gridSize; c++ {
			col := c
			if row%2 != 0 {
				col = gridSize - 1 - c
			}
			x := ctx.Bounds.MinX + (float64(col)+0.5)*cellSize
			y := ctx.Bounds.MinY + (float64(row)+0.5)*cellSize
			rx, ry := ctx.Rotate(x, y)
			pts = append(pts, [2]float64{rx, ry})
		}
	}

	return connectPoints(pts, p)
}
