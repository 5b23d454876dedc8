package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Gosper fills with the flowsnake curve, A -> A-B--B+A++AA+B-,
// B -> +A-BB--B-A++A+B, on a hex lattice. The unit-step curve is
// scaled to cover the bbox diagonal then rotated into place.
func Gosper(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	// Each level grows the curve by sqrt(7).
	scaleFactor := math.Sqrt(7)
	baseSize := spacing * 2
	depth := int(math.Floor(math.Log(ctx.Diagonal/baseSize) / math.Log(scaleFactor)))
	if depth < 1 {
		depth = 1
	} else if depth > 5 {
		depth = 5
	}

	commands := expandLSystem("A", map[rune]string{
		'A': "A-B--B+A++AA+B-",
		'B': "+A-BB--B-A++A+B",
	}, depth)
	pts := turtlePoints(commands, 0, 0, 1, 0, math.Pi/3)
	if len(pts) < 2 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		minX = math.Min(minX, pt[0])
		minY = math.Min(minY, pt[1])
		maxX = math.Max(maxX, pt[0])
		maxY = math.Max(maxY, pt[1])
	}
	curveW, curveH := maxX-minX, maxY-minY
	if curveW < 0.001 || curveH < 0.001 {
		return nil
	}

	scale := ctx.Diagonal * 1.2 / math.Max(curveW, curveH)
	ccx, ccy := (minX+maxX)/2, (minY+maxY)/2
	cos, sin := math.Cos(ctx.AngleRad), math.Sin(ctx.AngleRad)

	for i := range pts {
		x := (pts[i][0] - ccx) * scale
		y := (pts[i][1] - ccy) * scale
		pts[i][0] = x*cos - y*sin + ctx.Center.X
		pts[i][1] = x*sin + y*cos + ctx.Center.Y
	}

	lines := make([]geom.Line, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		lines = append(lines, geom.Ln(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1]))
	}

	return clip.ClipLines(lines, p)
}
