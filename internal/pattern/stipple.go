package pattern

import (
	"math"

	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Stipple fills with short randomly oriented dashes. Density follows
// 1/spacing^2 over the bbox area; rejection sampling keeps dots inside
// the body. The angle parameter is unused, dots have no grain.
func Stipple(p *geom.Polygon, spacing, _ float64, seed uint64) []geom.Line {
	ctx, ok := NewContext(p, spacing, 0)
	if !ok || spacing <= 0 {
		return nil
	}

	area := ctx.Width * ctx.Height
	numDots := int(area / (spacing * spacing) * 0.5)
	if numDots < 10 {
		numDots = 10
	} else if numDots > 50000 {
		numDots = 50000
	}
	dotSize := spacing * 0.15

	r := rng.New(seed)
	lines := make([]geom.Line, 0, numDots)
	maxAttempts := numDots * 10

	for attempts := 0; len(lines) < numDots && attempts < maxAttempts; attempts++ {
		x := ctx.Bounds.MinX + r.Float64()*ctx.Width
		y := ctx.Bounds.MinY + r.Float64()*ctx.Height
		if !ctx.PointInside(x, y) {
			continue
		}
		a := r.Float64() * math.Pi * 2
		dx := dotSize * math.Cos(a)
		dy := dotSize * math.Sin(a)
		lines = append(lines, geom.Ln(x-dx/2, y-dy/2, x+dx/2, y+dy/2))
	}
	return lines
}
