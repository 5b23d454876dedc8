package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Sierpinski fills with the Sierpinski arrowhead curve,
// A -> B-A-B, B -> A+B+A, 60 degree turns.
func Sierpinski(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	size := math.Max(ctx.Width, ctx.Height)
	segmentsNeeded := size / spacing
	depth := int(math.Ceil(math.Log2(segmentsNeeded)))
	if depth < 1 {
		depth = 1
	} else if depth > 8 {
		depth = 8
	}

	numSegments := math.Pow(3, float64(depth))
	stepSize := size / math.Sqrt(numSegments)

	commands := expandLSystem("A", map[rune]string{
		'A': "B-A-B",
		'B': "A+B+A",
	}, depth)

	startX := ctx.Center.X - size/2
	startY := ctx.Center.Y - size/2
	pts := turtlePoints(commands, startX, startY, stepSize, ctx.AngleRad, math.Pi/3)

	rot := NewRotation(ctx.Center.X, ctx.Center.Y, ctx.AngleRad)
	lines := make([]geom.Line, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		x1, y1 := rot.Apply(pts[i][0], pts[i][1])
		x2, y2 := rot.Apply(pts[i+1][0], pts[i+1][1])
		lines = append(lines, geom.Ln(x1, y1, x2, y2))
	}

	return clip.ClipLines(lines, p)
}
