package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// goldenAngle is 360 degrees divided by the golden ratio squared,
// about 137.5 degrees.
const goldenAngle = 2.39996322972865332

// Phyllotaxis fills with the sunflower seed arrangement: point i sits
// at angle i*goldenAngle, radius sqrt(i). The spiral trace plus
// Fibonacci-stride connections make the parastichy arms visible.
func Phyllotaxis(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	maxRadius := math.Min(ctx.Width, ctx.Height) / 2 * 0.95
	scale := spacing / 2
	maxI := int((maxRadius / scale) * (maxRadius / scale))

	type pt struct {
		x, y   float64
		inside bool
	}
	points := make([]pt, maxI)
	for i := 0; i < maxI; i++ {
		angle := float64(i)*goldenAngle + ctx.AngleRad
		radius := math.Sqrt(float64(i)) * scale
		x := ctx.Center.X + radius*math.Cos(angle)
		y := ctx.Center.Y + radius*math.Sin(angle)
		points[i] = pt{x, y, clip.PointInRing(x, y, p.Outer)}
	}

	var lines []geom.Line
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		lines = emitInside(lines, a.x, a.y, b.x, b.y, a.inside, b.inside, p)
	}

	// Parastichy arms run at Fibonacci strides through the sequence.
	fibonacci := []int{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}
	for _, fib := range fibonacci {
		if fib >= len(points) {
			break
		}
		for i := fib; i < len(points); i++ {
			a, b := points[i-fib], points[i]
			if !a.inside || !b.inside {
				continue
			}
			if math.Hypot(b.x-a.x, b.y-a.y) >= spacing*3 {
				continue
			}
			lines = emitInside(lines, a.x, a.y, b.x, b.y, true, true, p)
		}
	}
	return lines
}
