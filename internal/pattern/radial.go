package pattern

import (
	"math"
	"sort"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Radial fills with rays from the bbox center to the boundary. The
// spacing parameter is the angular step between rays in degrees; the
// angle offsets the first ray.
func Radial(p *geom.Polygon, angularSpacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, angularSpacing, angleDeg)
	if !ok {
		return nil
	}

	maxRadius := ctx.Diagonal
	start := ctx.AngleRad
	numRays := 36
	if angularSpacing > 0 {
		numRays = int(360 / angularSpacing)
	}
	step := angularSpacing * math.Pi / 180

	inHole := func(mx, my float64) bool {
		for _, hole := range p.Holes {
			if clip.PointInRing(mx, my, hole) {
				return true
			}
		}
		return false
	}

	var lines []geom.Line
	for i := 0; i < numRays; i++ {
		rayAngle := start + float64(i)*step
		endX := ctx.Center.X + maxRadius*math.Cos(rayAngle)
		endY := ctx.Center.Y + maxRadius*math.Sin(rayAngle)

		hits := clip.LineRingIntersections(ctx.Center.X, ctx.Center.Y, endX, endY, p.Outer)
		if len(hits) == 0 {
			continue
		}

		if clip.PointInRing(ctx.Center.X, ctx.Center.Y, p.Outer) {
			// Draw from the center to the nearest boundary crossing.
			best := hits[0]
			bestD := math.Inf(1)
			for _, h := range hits {
				d := (h.X-ctx.Center.X)*(h.X-ctx.Center.X) + (h.Y-ctx.Center.Y)*(h.Y-ctx.Center.Y)
				if d < bestD {
					bestD = d
					best = h
				}
			}
			mx, my := (ctx.Center.X+best.X)/2, (ctx.Center.Y+best.Y)/2
			if !inHole(mx, my) {
				lines = append(lines, geom.Ln(ctx.Center.X, ctx.Center.Y, best.X, best.Y))
			}
		} else if len(hits) >= 2 {
			// Concave shapes can leave the center outside; pair up the
			// crossings by distance instead.
			sorted := append([]clip.Crossing(nil), hits...)
			sort.Slice(sorted, func(a, b int) bool {
				da := (sorted[a].X-ctx.Center.X)*(sorted[a].X-ctx.Center.X) + (sorted[a].Y-ctx.Center.Y)*(sorted[a].Y-ctx.Center.Y)
				db := (sorted[b].X-ctx.Center.X)*(sorted[b].X-ctx.Center.X) + (sorted[b].Y-ctx.Center.Y)*(sorted[b].Y-ctx.Center.Y)
				return da < db
			})
			for j := 0; j+1 < len(sorted); j += 2 {
				a, b := sorted[j], sorted[j+1]
				mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
				if clip.PointInRing(mx, my, p.Outer) && !inHole(mx, my) {
					lines = append(lines, geom.Ln(a.X, a.Y, b.X, b.Y))
				}
			}
		}
	}
	return lines
}
