package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Pentagon tile angles. Type 15 is the Mann, McLoud-Mann and Von Derau
// pentagon from 2015; type 14 is Rolf Stein's 1985 pentagon with
// C = arccos((3*sqrt(57)-17)/16).
var (
	pentagon15Angles = [5]float64{135, 60, 150, 90, 105}
	pentagon15Sides  = [5]float64{1, 1, 1, 1, 1}

	pentagon14Angles = [5]float64{90, 145.34, 69.32, 124.66, 110.68}
	pentagon14Sides  = [5]float64{1.0, 0.8, 1.2, 0.9, 1.1}
)

// makePentagon walks the perimeter turning by the exterior angle at each
// vertex, then centers the result on (cx, cy).
func makePentagon(cx, cy, size, rotation float64, anglesDeg, sideRatios [5]float64) [5][2]float64 {
	var total float64
	for _, r := range sideRatios {
		total += r
	}

	var vertices [5][2]float64
	x, y := 0.0, 0.0
	direction := rotation
	for i := 0; i < 5; i++ {
		vertices[i] = [2]float64{x, y}
		edge := sideRatios[i] / total * 5 * size
		x += edge * math.Cos(direction)
		y += edge * math.Sin(direction)

		interior := anglesDeg[(i+1)%5] * math.Pi / 180
		direction += math.Pi - interior
	}

	var centroidX, centroidY float64
	for _, v := range vertices {
		centroidX += v[0]
		centroidY += v[1]
	}
	centroidX /= 5
	centroidY /= 5

	for i := range vertices {
		vertices[i][0] += cx - centroidX
		vertices[i][1] += cy - centroidY
	}
	return vertices
}

// Pentagon15 tiles with the 15th convex pentagonal tiling. The tile
// shape is fixed; spacing scales it and angle rotates the whole grid.
func Pentagon15(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	cfg := pentagonGrid{
		angles:   pentagon15Angles,
		sides:    pentagon15Sides,
		gridX:    2.5,
		gridY:    2.2,
		tileTurn: pentagon15Orientation,
	}
	return cfg.fill(p, spacing, angleDeg)
}

// Pentagon14 tiles with Rolf Stein's type 14 pentagon.
func Pentagon14(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	cfg := pentagonGrid{
		angles:   pentagon14Angles,
		sides:    pentagon14Sides,
		gridX:    2.3,
		gridY:    2.0,
		tileTurn: pentagon14Orientation,
	}
	return cfg.fill(p, spacing, angleDeg)
}

// Type 15 is 3-isohedral: three orientations plus their 180 degree
// rotations, cycling across the grid.
func pentagon15Orientation(row, col int) float64 {
	switch [2]int{row % 2, col % 3} {
	case [2]int{0, 0}:
		return 0
	case [2]int{0, 1}:
		return math.Pi * 2 / 3
	case [2]int{0, 2}:
		return math.Pi * 4 / 3
	case [2]int{1, 0}:
		return math.Pi
	case [2]int{1, 1}:
		return math.Pi + math.Pi*2/3
	case [2]int{1, 2}:
		return math.Pi + math.Pi*4/3
	}
	return 0
}

func pentagon14Orientation(row, col int) float64 {
	switch [2]int{row % 3, col % 2} {
	case [2]int{0, 0}:
		return 0
	case [2]int{0, 1}:
		return math.Pi * 0.6
	case [2]int{1, 0}:
		return math.Pi * 1.2
	case [2]int{1, 1}:
		return math.Pi * 1.8
	case [2]int{2, 0}:
		return math.Pi * 0.3
	case [2]int{2, 1}:
		return math.Pi * 0.9
	}
	return 0
}

type pentagonGrid struct {
	angles   [5]float64
	sides    [5]float64
	gridX    float64
	gridY    float64
	tileTurn func(row, col int) float64
}

func (g pentagonGrid) fill(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	pentSize := spacing * 2
	gridX := pentSize * g.gridX
	gridY := pentSize * g.gridY
	padding := pentSize*3 + ctx.Diagonal/2

	var lines []geom.Line
	row := 0
	for y := ctx.Bounds.MinY - padding; y <= ctx.Bounds.MaxY+padding; y += gridY {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = gridX * 0.5
		}

		col := 0
		for x := ctx.Bounds.MinX - padding + xOffset; x <= ctx.Bounds.MaxX+padding; x += gridX {
			pent := makePentagon(x, y, pentSize, g.tileTurn(row, col)+ctx.AngleRad, g.angles, g.sides)

			var rotated [5][2]float64
			var cx, cy float64
			for i, v := range pent {
				rx, ry := ctx.Rotate(v[0], v[1])
				rotated[i] = [2]float64{rx, ry}
				cx += rx
				cy += ry
			}
			cx /= 5
			cy /= 5

			keep := clip.PointInRing(cx, cy, p.Outer)
			if !keep {
				for _, v := range rotated {
					if clip.PointInRing(v[0], v[1], p.Outer) {
						keep = true
						break
					}
				}
			}

			if keep {
				for i := 0; i < 5; i++ {
					a, b := rotated[i], rotated[(i+1)%5]
					p1in := clip.PointInRing(a[0], a[1], p.Outer)
					p2in := clip.PointInRing(b[0], b[1], p.Outer)
					lines = clipTileEdge(lines, a[0], a[1], b[0], b[1], p1in, p2in, p)
				}
			}

			col++
		}
		row++
	}

	return dedupeLines(lines)
}
