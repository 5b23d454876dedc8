package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Sunburst fills with rays from the area centroid. Dense settings add
// half-length rays between the main spokes and concentric rings.
func Sunburst(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	cx, cy := areaCentroid(p.Outer)
	maxRadius := ctx.Diagonal * 0.75

	numRays := int(math.Ceil(2 * math.Pi * maxRadius / spacing))
	if numRays < 8 {
		numRays = 8
	} else if numRays > 360 {
		numRays = 360
	}
	angleStep := 2 * math.Pi / float64(numRays)

	var all []geom.Line
	for i := 0; i < numRays; i++ {
		a := ctx.AngleRad + float64(i)*angleStep
		all = append(all, geom.Ln(cx, cy, cx+maxRadius*math.Cos(a), cy+maxRadius*math.Sin(a)))

		if spacing < 15 {
			ha := a + angleStep/2
			hr := maxRadius * 0.6
			all = append(all, geom.Ln(cx, cy, cx+hr*math.Cos(ha), cy+hr*math.Sin(ha)))
		}
	}

	if spacing < 10 {
		ringSpacing := spacing * 3
		numRings := int(maxRadius / ringSpacing)
		segs := numRays * 2
		for r := 1; r <= numRings; r++ {
			radius := float64(r) * ringSpacing
			step := 2 * math.Pi / float64(segs)
			for i := 0; i < segs; i++ {
				a1 := float64(i) * step
				a2 := float64(i+1) * step
				all = append(all, geom.Ln(
					cx+radius*math.Cos(a1), cy+radius*math.Sin(a1),
					cx+radius*math.Cos(a2), cy+radius*math.Sin(a2),
				))
			}
		}
	}

	return clip.ClipLines(all, p)
}

// areaCentroid is the polygon area centroid, falling back to a vertex
// average when the ring is degenerate.
func areaCentroid(ring []geom.Point) (float64, float64) {
	n := len(ring)
	if n == 0 {
		return 0, 0
	}
	var cx, cy, signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
		signedArea += a
		cx += (ring[i].X + ring[j].X) * a
		cy += (ring[i].Y + ring[j].Y) * a
	}
	signedArea *= 0.5
	if math.Abs(signedArea) < 1e-10 {
		var sx, sy float64
		for _, pt := range ring {
			sx += pt.X
			sy += pt.Y
		}
		return sx / float64(n), sy / float64(n)
	}
	return cx / (6 * signedArea), cy / (6 * signedArea)
}
