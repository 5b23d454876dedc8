package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Lissajous fills with nested oscilloscope figures,
// x = A sin(a t + phase), y = B sin(b t). The angle is the phase; the
// spacing sets how many nested curves fit.
func Lissajous(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	scaleX := ctx.Width / 2 * 0.9
	scaleY := ctx.Height / 2 * 0.9
	phase := ctx.AngleRad

	numCurves := int(math.Ceil(math.Min(scaleX, scaleY) / spacing))
	if numCurves > 8 {
		numCurves = 8
	}

	ratios := [4][2]float64{{3, 2}, {5, 4}, {3, 4}, {5, 6}}

	var lines []geom.Line
	for idx := 1; idx <= numCurves; idx++ {
		tScale := float64(idx) / float64(numCurves)
		ratio := ratios[idx%len(ratios)]
		lines = append(lines, singleLissajous(
			ctx.Center, scaleX*tScale, scaleY*tScale, ratio[0], ratio[1], phase, p,
		)...)
	}
	return lines
}

func singleLissajous(center geom.Point, ampX, ampY, freqA, freqB, phase float64, p *geom.Polygon) []geom.Line {
	maxT := 2 * math.Pi * math.Max(freqA, freqB)
	steps := int(maxT * 30)
	if steps > 500 {
		steps = 500
	}
	dt := maxT / float64(steps)

	var lines []geom.Line
	var px, py float64
	prevIn := false

	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		x := center.X + ampX*math.Sin(freqA*t+phase)
		y := center.Y + ampY*math.Sin(freqB*t)
		curIn := clip.PointInRing(x, y, p.Outer)

		if i > 0 {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
	}
	return lines
}
