package pattern

import (
	"math"

	"plotfill/internal/geom"
)

// Concentric fills with nested outlines shrinking toward the vertex
// centroid. connectLoops joins each ring's end to the nearest point of
// the next ring for a single continuous path. No angle parameter, the
// rings inherit the polygon's own orientation. Ring edges whose
// midpoint lands in a hole are dropped.
func Concentric(p *geom.Polygon, spacing float64, connectLoops bool) []geom.Line {
	if len(p.Outer) < 3 || spacing <= 0 {
		return nil
	}
	b, ok := p.BoundingBox()
	if !ok {
		return nil
	}

	maxDim := math.Max(b.Width(), b.Height())
	maxLoops := int(math.Ceil(maxDim/spacing)) + 2
	if maxLoops > 100 {
		maxLoops = 100
	}
	minArea := spacing * spacing * 0.5

	var loops [][]geom.Point
	current := append([]geom.Point(nil), p.Outer...)

	for i := 0; i < maxLoops; i++ {
		if len(current) < 3 {
			break
		}
		if math.Abs(geom.SignedAreaOf(current)) < minArea {
			break
		}
		loops = append(loops, current)
		current = insetRing(current, spacing)
	}
	if len(loops) == 0 {
		loops = append(loops, p.Outer)
	}

	var lines []geom.Line
	for loopIdx, ring := range loops {
		for i := range ring {
			j := (i + 1) % len(ring)
			lines = append(lines, geom.Ln(ring[i].X, ring[i].Y, ring[j].X, ring[j].Y))
		}

		if connectLoops && loopIdx < len(loops)-1 {
			last := ring[len(ring)-1]
			next := loops[loopIdx+1]
			closest := next[0]
			bestD := math.Inf(1)
			for _, pt := range next {
				d := (pt.X-last.X)*(pt.X-last.X) + (pt.Y-last.Y)*(pt.Y-last.Y)
				if d < bestD {
					bestD = d
					closest = pt
				}
			}
			lines = append(lines, geom.Ln(last.X, last.Y, closest.X, closest.Y))
		}
	}
	if len(p.Holes) > 0 {
		kept := lines[:0]
		for _, l := range lines {
			mid := l.Midpoint()
			if !inAnyHole(mid.X, mid.Y, p) {
				kept = append(kept, l)
			}
		}
		lines = kept
	}
	return lines
}

// insetRing moves each vertex toward the vertex centroid by the inset
// distance, collapsing vertices closer than that. A crude offset, but
// stable for the convex-ish shapes plots actually use.
func insetRing(ring []geom.Point, inset float64) []geom.Point {
	if len(ring) < 3 {
		return nil
	}
	var cx, cy float64
	for _, pt := range ring {
		cx += pt.X
		cy += pt.Y
	}
	cx /= float64(len(ring))
	cy /= float64(len(ring))

	out := make([]geom.Point, 0, len(ring))
	for _, pt := range ring {
		dx, dy := pt.X-cx, pt.Y-cy
		dist := math.Hypot(dx, dy)
		var next geom.Point
		if dist < inset {
			next = geom.Pt(cx, cy)
		} else {
			scale := (dist - inset) / dist
			next = geom.Pt(cx+dx*scale, cy+dy*scale)
		}
		if n := len(out); n > 0 {
			last := out[n-1]
			if math.Abs(last.X-next.X) <= 0.001 && math.Abs(last.Y-next.Y) <= 0.001 {
				continue
			}
		}
		out = append(out, next)
	}
	return out
}
