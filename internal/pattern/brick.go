package pattern

import (
	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Brick fills with running-bond brickwork: horizontal mortar courses
// with vertical joints offset half a brick per row. Brick height is
// the spacing, width 2.5x that.
func Brick(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	brickHeight := spacing
	brickWidth := spacing * 2.5
	padding := ctx.Diagonal/2 + brickWidth

	var lines []geom.Line
	row := 0
	for y := ctx.Bounds.MinY - padding; y <= ctx.Bounds.MaxY+padding; y += brickHeight {
		rowOff := 0.0
		if row%2 == 1 {
			rowOff = brickWidth / 2
		}

		hx1, hy1 := ctx.Rotate(ctx.Bounds.MinX-padding, y)
		hx2, hy2 := ctx.Rotate(ctx.Bounds.MaxX+padding, y)
		if clip.PointInRing((hx1+hx2)/2, (hy1+hy2)/2, p.Outer) {
			lines = append(lines, geom.Ln(hx1, hy1, hx2, hy2))
		}

		for x := ctx.Bounds.MinX - padding + rowOff; x <= ctx.Bounds.MaxX+padding; x += brickWidth {
			vx1, vy1 := ctx.Rotate(x, y)
			vx2, vy2 := ctx.Rotate(x, y+brickHeight)
			mx, my := (vx1+vx2)/2, (vy1+vy2)/2
			if clip.PointInRing(mx, my, p.Outer) && !inAnyHole(mx, my, p) {
				lines = append(lines, geom.Ln(vx1, vy1, vx2, vy2))
			}
		}
		row++
	}

	// Courses were only midpoint-tested; the clipper trims the spans
	// that run past the boundary.
	return clip.ClipLines(lines, p)
}
