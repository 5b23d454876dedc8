package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// emitInside appends the segment when both endpoints were inside the
// outer ring and the midpoint avoids every hole. Parametric curves use
// this instead of the full clipper: they sample densely enough that
// endpoint truncation is not worth the cost.
func emitInside(lines []geom.Line, px, py, x, y float64, prevIn, curIn bool, p *geom.Polygon) []geom.Line {
	if !prevIn || !curIn {
		return lines
	}
	mx, my := (px+x)/2, (py+y)/2
	for _, hole := range p.Holes {
		if clip.PointInRing(mx, my, hole) {
			return lines
		}
	}
	return append(lines, geom.Ln(px, py, x, y))
}

// Spiral fills with an Archimedean spiral, r = a*theta, where the arm
// spacing equals the spacing parameter. The angle rotates the start.
func Spiral(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	maxRadius := ctx.Diagonal / 2 * 1.5
	a := spacing / (2 * math.Pi)
	start := ctx.AngleRad
	maxTheta := maxRadius / a

	var lines []geom.Line
	theta := 0.0
	var px, py float64
	prevIn := false
	first := true

	for theta < maxTheta {
		r := a * theta
		x := ctx.Center.X + r*math.Cos(theta+start)
		y := ctx.Center.Y + r*math.Sin(theta+start)
		curIn := clip.PointInRing(x, y, p.Outer)

		if !first {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
		first = false

		// Smaller angular steps at larger radii keep arc length even.
		theta += math.Min(spacing/math.Max(r, 1), 0.5)
	}
	return lines
}

// Fermat fills with a Fermat spiral, r = c*sqrt(n), stepping by the
// golden angle for a phyllotactic dot-to-dot trace.
func Fermat(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	maxRadius := ctx.Diagonal / 2 * 1.5
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	start := ctx.AngleRad
	c := spacing / math.Sqrt(math.Pi)

	var lines []geom.Line
	var px, py float64
	prevIn := false

	for n := 0; ; n++ {
		r := c * math.Sqrt(float64(n))
		if r > maxRadius {
			break
		}
		theta := float64(n)*goldenAngle + start
		x := ctx.Center.X + r*math.Cos(theta)
		y := ctx.Center.Y + r*math.Sin(theta)
		curIn := clip.PointInRing(x, y, p.Outer)

		if n > 0 {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
	}
	return lines
}
