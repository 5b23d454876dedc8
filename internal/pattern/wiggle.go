package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Wiggle fills with parallel rows of sine waves. Amplitude displaces
// along the perpendicular; frequency is cycles per unit of travel.
func Wiggle(p *geom.Polygon, spacing, angleDeg, amplitude, frequency float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	diagonal := ctx.Diagonal * 1.42
	perpX := math.Cos(ctx.AngleRad + math.Pi/2)
	perpY := math.Sin(ctx.AngleRad + math.Pi/2)
	dirX := math.Cos(ctx.AngleRad)
	dirY := math.Sin(ctx.AngleRad)

	numRows := int(math.Ceil(diagonal/spacing)) + 1
	const segLen = 2.0
	numSegs := int(diagonal * 2 / segLen)

	var lines []geom.Line
	for i := -numRows; i <= numRows; i++ {
		off := float64(i) * spacing
		rcx := ctx.Center.X + perpX*off
		rcy := ctx.Center.Y + perpY*off

		for j := 0; j < numSegs; j++ {
			t1 := float64(j-numSegs/2) * segLen
			t2 := t1 + segLen
			w1 := amplitude * math.Sin(t1*frequency*2*math.Pi)
			w2 := amplitude * math.Sin(t2*frequency*2*math.Pi)
			lines = append(lines, geom.Ln(
				rcx+dirX*t1+perpX*w1, rcy+dirY*t1+perpY*w1,
				rcx+dirX*t2+perpX*w2, rcy+dirY*t2+perpY*w2,
			))
		}
	}

	return clip.ClipLines(lines, p)
}
