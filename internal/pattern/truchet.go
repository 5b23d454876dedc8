package pattern

import (
	"math"

	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Truchet fills with randomly flipped quarter-circle tiles. Adjacent
// arcs meet at cell edge midpoints, so the flips read as one flowing
// maze. Cell size is 2x the spacing.
func Truchet(p *geom.Polygon, spacing, angleDeg float64, seed uint64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	cellSize := spacing * 2
	const arcSegments = 8
	radius := cellSize / 2
	padding := cellSize + ctx.Diagonal/2

	r := rng.New(seed)
	var lines []geom.Line

	emitArc := func(acx, acy, startAngle, endAngle float64) {
		for i := 0; i < arcSegments; i++ {
			t1 := float64(i) / arcSegments
			t2 := float64(i+1) / arcSegments
			a1 := startAngle + t1*(endAngle-startAngle)
			a2 := startAngle + t2*(endAngle-startAngle)

			x1, y1 := ctx.Rotate(acx+radius*math.Cos(a1), acy+radius*math.Sin(a1))
			x2, y2 := ctx.Rotate(acx+radius*math.Cos(a2), acy+radius*math.Sin(a2))

			l := geom.Ln(x1, y1, x2, y2)
			if ctx.LineInside(l) {
				lines = append(lines, l)
			}
		}
	}

	for cy := ctx.Bounds.MinY - padding; cy <= ctx.Bounds.MaxY+padding; cy += cellSize {
		for cx := ctx.Bounds.MinX - padding; cx <= ctx.Bounds.MaxX+padding; cx += cellSize {
			if r.Bool(0.5) {
				// Arcs centered on the top-left and bottom-right corners.
				emitArc(cx, cy, 0, math.Pi/2)
				emitArc(cx+cellSize, cy+cellSize, math.Pi, math.Pi*3/2)
			} else {
				// Top-right and bottom-left.
				emitArc(cx+cellSize, cy, math.Pi/2, math.Pi)
				emitArc(cx, cy+cellSize, math.Pi*3/2, math.Pi*2)
			}
		}
	}

	return lines
}
