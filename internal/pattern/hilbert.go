package pattern

import (
	"math"

	"plotfill/internal/geom"
)

// Hilbert fills with a Hilbert space-filling curve sized so each grid
// cell is roughly one spacing wide. A single continuous stroke when
// the shape is convex.
func Hilbert(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	size := math.Max(ctx.Width, ctx.Height)
	depth := int(math.Ceil(math.Log2(size / spacing)))
	if depth < 1 {
		depth = 1
	} else if depth > 8 {
		depth = 8
	}
	gridSize := 1 << depth
	cellSize := size / float64(gridSize)

	pts := make([][2]float64, 0, gridSize*gridSize)
	for d := 0; d < gridSize*gridSize; d++ {
		gx, gy := hilbertD2XY(gridSize, d)
		x := ctx.Bounds.MinX + (float64(gx)+0.5)*cellSize
		y := ctx.Bounds.MinY + (float64(gy)+0.5)*cellSize
		rx, ry := ctx.Rotate(x, y)
		pts = append(pts, [2]float64{rx, ry})
	}

	return connectPoints(pts, p)
}

// hilbertD2XY maps distance along the curve to grid coordinates.
func hilbertD2XY(n, d int) (int, int) {
	x, y := 0, 0
	for s := 1; s < n; s *= 2 {
		rx := 1 & (d / 2)
		ry := 1 & (d ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		d /= 4
	}
	return x, y
}
