package pattern

import (
	"fmt"
	"math"
	"sort"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Tiling patterns stamp a repeating cell over the padded bounds and
// clip each cell edge against the polygon. The per-edge cases mirror
// the general clipper but work on already-known endpoint states, which
// saves a point-in-polygon call per vertex shared between cells.

func inAnyHole(x, y float64, p *geom.Polygon) bool {
	for _, hole := range p.Holes {
		if clip.PointInRing(x, y, hole) {
			return true
		}
	}
	return false
}

// clipTileEdge clips one cell edge given precomputed endpoint
// containment and appends the surviving pieces.
func clipTileEdge(lines []geom.Line, x1, y1, x2, y2 float64, p1in, p2in bool, p *geom.Polygon) []geom.Line {
	switch {
	case p1in && p2in:
		mx, my := (x1+x2)/2, (y1+y2)/2
		if !inAnyHole(mx, my, p) {
			lines = append(lines, geom.Ln(x1, y1, x2, y2))
		}
	case p1in || p2in:
		hits := clip.LineRingIntersections(x1, y1, x2, y2, p.Outer)
		if len(hits) == 0 {
			break
		}
		ix, iy := x1, y1
		if p2in {
			ix, iy = x2, y2
		}
		best := hits[0]
		bestD := math.Inf(1)
		for _, h := range hits {
			d := (h.X-ix)*(h.X-ix) + (h.Y-iy)*(h.Y-iy)
			if d < bestD {
				bestD = d
				best = h
			}
		}
		mx, my := (ix+best.X)/2, (iy+best.Y)/2
		if !inAnyHole(mx, my, p) {
			lines = append(lines, geom.Ln(ix, iy, best.X, best.Y))
		}
	default:
		// Both endpoints outside; the edge may still cross the body.
		hits := clip.LineRingIntersections(x1, y1, x2, y2, p.Outer)
		if len(hits) < 2 {
			break
		}
		sorted := append([]clip.Crossing(nil), hits...)
		sort.Slice(sorted, func(a, b int) bool {
			da := (sorted[a].X-x1)*(sorted[a].X-x1) + (sorted[a].Y-y1)*(sorted[a].Y-y1)
			db := (sorted[b].X-x1)*(sorted[b].X-x1) + (sorted[b].Y-y1)*(sorted[b].Y-y1)
			return da < db
		})
		for j := 0; j+1 < len(sorted); j += 2 {
			a, b := sorted[j], sorted[j+1]
			mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
			if clip.PointInRing(mx, my, p.Outer) && !inAnyHole(mx, my, p) {
				lines = append(lines, geom.Ln(a.X, a.Y, b.X, b.Y))
			}
		}
	}
	return lines
}

// dedupeLines drops segments whose endpoints match an earlier segment
// in either order, to 2 decimal places. Adjacent cells share edges.
func dedupeLines(lines []geom.Line) []geom.Line {
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]
	for _, l := range lines {
		k1 := fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", l.X1, l.Y1, l.X2, l.Y2)
		k2 := fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", l.X2, l.Y2, l.X1, l.Y1)
		if _, dup := seen[k1]; dup {
			continue
		}
		if _, dup := seen[k2]; dup {
			continue
		}
		seen[k1] = struct{}{}
		out = append(out, l)
	}
	return out
}
