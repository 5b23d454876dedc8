package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Crossspiral fills with two opposing Archimedean arms, one winding
// each way, 180 degrees apart. Arm spacing is doubled so the overlay
// matches the requested density.
func Crossspiral(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	maxRadius := ctx.Diagonal / 2 * 1.5
	a := spacing / math.Pi
	maxTheta := maxRadius / a

	lines := spiralArm(p, ctx.Center, a, ctx.AngleRad, maxTheta, 1)
	return append(lines, spiralArm(p, ctx.Center, a, ctx.AngleRad+math.Pi, maxTheta, -1)...)
}

func spiralArm(p *geom.Polygon, center geom.Point, a, startAngle, maxTheta, direction float64) []geom.Line {
	var lines []geom.Line
	theta := 0.0
	var px, py float64
	prevIn := false
	first := true
	armSpacing := a * 2 * math.Pi

	for theta < maxTheta {
		r := a * theta
		angle := direction*theta + startAngle
		x := center.X + r*math.Cos(angle)
		y := center.Y + r*math.Sin(angle)
		curIn := clip.PointInRing(x, y, p.Outer)

		if !first {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
		first = false

		theta += math.Min(armSpacing/math.Max(r, 1), 0.5)
	}
	return lines
}
