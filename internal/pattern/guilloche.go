package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Guilloche fills with nested hypotrochoid rings, the spirograph
// curves used on banknotes. Fixed 5:3 wheel ratio with the pen at 0.8
// of the inner radius.
func Guilloche(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	scale := math.Min(ctx.Width, ctx.Height) / 2 * 0.9
	startAngle := ctx.AngleRad

	numRings := int(math.Ceil(scale / spacing))
	if numRings > 5 {
		numRings = 5
	}

	var lines []geom.Line
	for ring := 1; ring <= numRings; ring++ {
		ringScale := float64(ring) / float64(numRings) * scale
		const rRatio = 5.0 / 3.0
		outerR := ringScale
		innerR := outerR / rRatio
		penDist := innerR * 0.8
		lines = append(lines, hypotrochoid(ctx.Center, outerR, innerR, penDist, startAngle, p)...)
	}
	return lines
}

// hypotrochoid traces a point on a circle rolling inside another,
// x = (R-r)cos(t) + d cos((R-r)/r t), y = (R-r)sin(t) - d sin((R-r)/r t).
func hypotrochoid(center geom.Point, bigR, smallR, penD, startAngle float64, p *geom.Polygon) []geom.Line {
	ratio := bigR / smallR
	var rotations int
	if math.Abs(ratio-math.Round(ratio)) < 0.01 {
		rotations = int(math.Round(ratio))
	} else {
		rotations = int(math.Round(ratio * 10))
		if rotations < 5 {
			rotations = 5
		}
	}

	maxT := 2 * math.Pi * float64(rotations)
	steps := int(maxT * 30)
	if steps > 1000 {
		steps = 1000
	}
	dt := maxT / float64(steps)

	diff := bigR - smallR
	freq := diff / smallR

	var lines []geom.Line
	var px, py float64
	prevIn := false

	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		x := center.X + diff*math.Cos(t+startAngle) + penD*math.Cos(freq*t+startAngle)
		y := center.Y + diff*math.Sin(t+startAngle) - penD*math.Sin(freq*t+startAngle)
		curIn := clip.PointInRing(x, y, p.Outer)

		if i > 0 {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
	}
	return lines
}
