package pattern

import (
	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// connectPoints turns a traced point sequence into segments, keeping
// only the spans whose endpoints both lie inside the outer ring and
// whose midpoint avoids every hole.
func connectPoints(pts [][2]float64, p *geom.Polygon) []geom.Line {
	var lines []geom.Line
	var px, py float64
	prevIn := false
	for i, pt := range pts {
		curIn := clip.PointInRing(pt[0], pt[1], p.Outer)
		if i > 0 {
			lines = emitInside(lines, px, py, pt[0], pt[1], prevIn, curIn, p)
		}
		px, py = pt[0], pt[1]
		prevIn = curIn
	}
	return lines
}
