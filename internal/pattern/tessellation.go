package pattern

import (
	"math"

	"plotfill/internal/geom"
)

// Tessellation triangulates the outer ring by ear clipping and draws
// every triangle edge. Spacing and angle are ignored; the structure
// comes entirely from the shape. Edges whose midpoint lands in a hole
// are dropped.
func Tessellation(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	if len(p.Outer) < 3 {
		return nil
	}

	triangles := triangulate(p.Outer)

	lines := make([]geom.Line, 0, len(triangles)*3)
	for _, tri := range triangles {
		lines = append(lines,
			geom.Line{X1: tri[0].X, Y1: tri[0].Y, X2: tri[1].X, Y2: tri[1].Y},
			geom.Line{X1: tri[1].X, Y1: tri[1].Y, X2: tri[2].X, Y2: tri[2].Y},
			geom.Line{X1: tri[2].X, Y1: tri[2].Y, X2: tri[0].X, Y2: tri[0].Y},
		)
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

// triangulate ear-clips a simple polygon into n-2 triangles.
func triangulate(vertices []geom.Point) [][3]geom.Point {
	n := len(vertices)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return [][3]geom.Point{{vertices[0], vertices[1], vertices[2]}}
	}

	var triangles [][3]geom.Point

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	clockwise := ringIsClockwise(vertices)

	for len(indices) > 3 {
		earFound := false
		for i := range indices {
			count := len(indices)
			a := vertices[indices[(i+count-1)%count]]
			b := vertices[indices[i]]
			c := vertices[indices[(i+1)%count]]

			if isEar(a, b, c, indices, vertices, clockwise) {
				triangles = append(triangles, [3]geom.Point{a, b, c})
				indices = append(indices[:i], indices[i+1:]...)
				earFound = true
				break
			}
		}

		// Degenerate input can leave no valid ear. Force-clip the
		// second remaining vertex so the loop still terminates.
		if !earFound {
			triangles = append(triangles, [3]geom.Point{
				vertices[indices[0]], vertices[indices[1]], vertices[indices[2]],
			})
			indices = append(indices[:1], indices[2:]...)
		}
	}

	triangles = append(triangles, [3]geom.Point{
		vertices[indices[0]], vertices[indices[1]], vertices[indices[2]],
	})
	return triangles
}

func ringIsClockwise(vertices []geom.Point) bool {
	sum := 0.0
	n := len(vertices)
	for i := 0; i < n; i++ {
		p1 := vertices[i]
		p2 := vertices[(i+1)%n]
		sum += (p2.X - p1.X) * (p2.Y + p1.Y)
	}
	return sum > 0
}

func isEar(a, b, c geom.Point, indices []int, vertices []geom.Point, clockwise bool) bool {
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	convex := cross <= 0
	if clockwise {
		convex = cross >= 0
	}
	if !convex {
		return false
	}

	for _, idx := range indices {
		pt := vertices[idx]
		if pointNear(pt, a) || pointNear(pt, b) || pointNear(pt, c) {
			continue
		}
		if pointInTriangle(pt, a, b, c) {
			return false
		}
	}
	return true
}

func pointNear(p1, p2 geom.Point) bool {
	const eps = 1e-10
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// pointInTriangle checks all three edge cross products have the same
// sign (or zero, for points on an edge).
func pointInTriangle(p, a, b, c geom.Point) bool {
	d1 := triSign(p, a, b)
	d2 := triSign(p, b, c)
	d3 := triSign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func triSign(p1, p2, p3 geom.Point) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}
