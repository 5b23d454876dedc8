package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Rose fills with nested rhodonea petals, r = cos(k*theta). Each 60
// degree band of the angle picks a k from 2 to 7; the remainder spins
// the petals.
func Rose(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	maxRadius := math.Min(ctx.Width, ctx.Height) / 2 * 0.9

	var k float64
	switch (int(angleDeg) / 60) % 6 {
	case 0:
		k = 2
	case 1:
		k = 3
	case 2:
		k = 4
	case 3:
		k = 5
	case 4:
		k = 6
	default:
		k = 7
	}
	rotation := math.Mod(angleDeg, 60) * math.Pi / 180

	numCurves := int(math.Ceil(maxRadius / spacing))
	if numCurves > 10 {
		numCurves = 10
	}

	var lines []geom.Line
	for idx := 1; idx <= numCurves; idx++ {
		radius := float64(idx) / float64(numCurves) * maxRadius
		lines = append(lines, singleRose(ctx.Center, radius, k, rotation, p)...)
	}
	return lines
}

func singleRose(center geom.Point, maxRadius, k, rotation float64, p *geom.Polygon) []geom.Line {
	maxTheta := 2 * math.Pi
	steps := int(maxTheta * 50)
	if steps > 400 {
		steps = 400
	}
	dtheta := maxTheta / float64(steps)

	var lines []geom.Line
	var px, py float64
	prevIn := false

	for i := 0; i <= steps; i++ {
		theta := float64(i) * dtheta
		r := maxRadius * math.Abs(math.Cos(k*theta))
		x := center.X + r*math.Cos(theta+rotation)
		y := center.Y + r*math.Sin(theta+rotation)
		curIn := clip.PointInRing(x, y, p.Outer)

		if i > 0 {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
	}
	return lines
}
