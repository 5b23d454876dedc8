package pattern

import (
	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Diagonal is the parallel-line fill with a 45 degree default when no
// angle is given.
func Diagonal(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	effective := angleDeg
	if effective == 0 {
		effective = 45
	}
	ctx, ok := NewContext(p, spacing, effective)
	if !ok || spacing <= 0 {
		return nil
	}
	dir := NewDirectionDegrees(effective)
	lines := dir.ParallelLines(ctx.Center, spacing, ctx.LineCount(), ctx.Diagonal)
	return clip.ClipLines(lines, p)
}
