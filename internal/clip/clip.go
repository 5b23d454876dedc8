// Package clip restricts candidate segments to a polygon's fillable
// area. This is the hot path: every pattern funnels its raw segments
// through here, so the primitives avoid allocation where they can.
package clip

import (
	"sort"

	"plotfill/internal/geom"
)

// denomEps guards near-parallel intersection denominators.
const denomEps = 1e-10

// tEps collapses crossings whose parameters coincide, so an endpoint
// sitting exactly on the boundary is not counted twice.
const tEps = 1e-9

// edgeEps is the distance within which a point counts as on a ring
// edge. Sweep rows collinear with a boundary edge must survive
// clipping even though a ray cast puts their midpoint outside.
const edgeEps = 1e-7

// PointInRing runs a ray cast against an implicitly closed ring.
// Odd crossings = inside.
func PointInRing(px, py float64, ring []geom.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := ring[i].X, ring[i].Y
		xj, yj := ring[j].X, ring[j].Y
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInBody reports whether the point is inside the outer ring and
// outside every hole.
func PointInBody(px, py float64, p *geom.Polygon) bool {
	if !PointInRing(px, py, p.Outer) {
		return false
	}
	for _, hole := range p.Holes {
		if PointInRing(px, py, hole) {
			return false
		}
	}
	return true
}

// distSqToEdge returns the squared distance from a point to a segment.
func distSqToEdge(px, py float64, a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-a.X)*dx + (py-a.Y)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	ex, ey := a.X+t*dx-px, a.Y+t*dy-py
	return ex*ex + ey*ey
}

// onRing reports whether the point lies within edgeEps of any ring edge.
func onRing(px, py float64, ring []geom.Point) bool {
	n := len(ring)
	if n < 2 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		if distSqToEdge(px, py, ring[j], ring[i]) <= edgeEps*edgeEps {
			return true
		}
		j = i
	}
	return false
}

// PointOnBoundary reports whether the point lies on the outer ring or
// any hole ring, within edgeEps.
func PointOnBoundary(px, py float64, p *geom.Polygon) bool {
	if onRing(px, py, p.Outer) {
		return true
	}
	for _, hole := range p.Holes {
		if onRing(px, py, hole) {
			return true
		}
	}
	return false
}

// dedupeCrossings collapses points with coinciding parameters in a
// T-sorted slice. Without this an endpoint resting on the boundary
// shows up both as an endpoint and as a crossing, producing a
// zero-length span.
func dedupeCrossings(pts []Crossing) []Crossing {
	out := pts[:0]
	for _, c := range pts {
		if len(out) > 0 && c.T-out[len(out)-1].T <= tEps {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SegmentIntersection intersects two segments. t is the parametric
// position on the first segment. ok is false for parallel or
// out-of-range crossings.
func SegmentIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (ix, iy, t float64, ok bool) {
	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if denom < denomEps && denom > -denomEps {
		return 0, 0, 0, false
	}
	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denom
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return 0, 0, 0, false
	}
	return x1 + ua*(x2-x1), y1 + ua*(y2-y1), ua, true
}

// Crossing is an intersection between a segment and a ring edge,
// positioned by the parameter t along the segment.
type Crossing struct {
	X, Y float64
	T    float64
}

// LineRingIntersections collects all boundary crossings of a segment,
// sorted by t.
func LineRingIntersections(lx1, ly1, lx2, ly2 float64, ring []geom.Point) []Crossing {
	n := len(ring)
	if n < 3 {
		return nil
	}
	dx := lx2 - lx1
	dy := ly2 - ly1
	var out []Crossing
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ix, iy, _, ok := SegmentIntersection(lx1, ly1, lx2, ly2, ring[i].X, ring[i].Y, ring[j].X, ring[j].Y)
		if !ok {
			continue
		}
		// Recompute t on the dominant axis for stable sorting.
		var t float64
		if abs(dx) > abs(dy) {
			t = (ix - lx1) / dx
		} else if dy != 0 {
			t = (iy - ly1) / dy
		}
		out = append(out, Crossing{X: ix, Y: iy, T: t})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].T < out[b].T })
	return out
}

// ClipLineToOuter clips one segment against the outer ring only.
// Spans whose midpoint tests inside or on the ring are kept, so a
// segment collinear with a boundary edge clips to that edge instead of
// vanishing.
func ClipLineToOuter(l geom.Line, p *geom.Polygon) []geom.Line {
	if b, ok := p.BoundingBox(); ok {
		if maxf(l.X1, l.X2) < b.MinX || minf(l.X1, l.X2) > b.MaxX ||
			maxf(l.Y1, l.Y2) < b.MinY || minf(l.Y1, l.Y2) > b.MaxY {
			return nil
		}
	}

	crossings := LineRingIntersections(l.X1, l.Y1, l.X2, l.Y2, p.Outer)

	pts := make([]Crossing, 0, len(crossings)+2)
	if PointInRing(l.X1, l.Y1, p.Outer) {
		pts = append(pts, Crossing{X: l.X1, Y: l.Y1, T: 0})
	}
	pts = append(pts, crossings...)
	if PointInRing(l.X2, l.Y2, p.Outer) {
		pts = append(pts, Crossing{X: l.X2, Y: l.Y2, T: 1})
	}
	sort.Slice(pts, func(a, b int) bool { return pts[a].T < pts[b].T })
	pts = dedupeCrossings(pts)

	var out []geom.Line
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
		if PointInRing(mx, my, p.Outer) || onRing(mx, my, p.Outer) {
			out = append(out, geom.Ln(a.X, a.Y, b.X, b.Y))
		}
	}
	return out
}

// ClipLine clips one segment to the fillable body: inside the outer
// ring, outside every hole. Segments crossing a hole split into the
// spans flanking it.
func ClipLine(l geom.Line, p *geom.Polygon) []geom.Line {
	if len(p.Holes) == 0 {
		return ClipLineToOuter(l, p)
	}
	if b, ok := p.BoundingBox(); ok {
		if maxf(l.X1, l.X2) < b.MinX || minf(l.X1, l.X2) > b.MaxX ||
			maxf(l.Y1, l.Y2) < b.MinY || minf(l.Y1, l.Y2) > b.MaxY {
			return nil
		}
	} else {
		return nil
	}

	// Crossings against every ring, then keep the spans whose midpoint
	// lands in the body.
	crossings := LineRingIntersections(l.X1, l.Y1, l.X2, l.Y2, p.Outer)
	for _, hole := range p.Holes {
		crossings = append(crossings, LineRingIntersections(l.X1, l.Y1, l.X2, l.Y2, hole)...)
	}

	pts := make([]Crossing, 0, len(crossings)+2)
	if PointInBody(l.X1, l.Y1, p) {
		pts = append(pts, Crossing{X: l.X1, Y: l.Y1, T: 0})
	}
	pts = append(pts, crossings...)
	if PointInBody(l.X2, l.Y2, p) {
		pts = append(pts, Crossing{X: l.X2, Y: l.Y2, T: 1})
	}
	sort.Slice(pts, func(a, b int) bool { return pts[a].T < pts[b].T })
	pts = dedupeCrossings(pts)

	// Hole exclusion stays a strict ray cast: a span collinear with a
	// hole edge whose midpoint ray-casts inside the hole is covered by
	// the hole, not by the body.
	var out []geom.Line
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
		if !PointInRing(mx, my, p.Outer) && !onRing(mx, my, p.Outer) {
			continue
		}
		inHole := false
		for _, hole := range p.Holes {
			if PointInRing(mx, my, hole) {
				inHole = true
				break
			}
		}
		if !inHole {
			out = append(out, geom.Ln(a.X, a.Y, b.X, b.Y))
		}
	}
	return out
}

// ClipLines clips a batch of candidate segments. The main entry point
// for sweep patterns.
func ClipLines(lines []geom.Line, p *geom.Polygon) []geom.Line {
	out := make([]geom.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, ClipLine(l, p)...)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
