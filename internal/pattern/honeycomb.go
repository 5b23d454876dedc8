package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Honeycomb fills with a hexagonal grid. Hex size is 1.5x the spacing;
// rows interlock by offsetting every other row half a column.
func Honeycomb(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	hexSize := spacing * 1.5
	hexWidth := hexSize * 2
	hexHeight := hexSize * math.Sqrt(3)
	horizSpacing := hexWidth * 0.75
	vertSpacing := hexHeight

	var offsets [6][2]float64
	for i := 0; i < 6; i++ {
		a := math.Pi / 3 * float64(i)
		offsets[i] = [2]float64{hexSize * math.Cos(a), hexSize * math.Sin(a)}
	}

	padding := hexSize*2 + ctx.Diagonal/2
	var lines []geom.Line

	row := 0
	for y := ctx.Bounds.MinY - padding; y <= ctx.Bounds.MaxY+padding; y += vertSpacing * 0.5 {
		xOff := 0.0
		if row%2 == 1 {
			xOff = horizSpacing * 0.5
		}
		for x := ctx.Bounds.MinX - padding + xOff; x <= ctx.Bounds.MaxX+padding; x += horizSpacing {
			rcx, rcy := ctx.Rotate(x, y)

			var hex [6][2]float64
			for i, o := range offsets {
				hx, hy := ctx.Rotate(x+o[0], y+o[1])
				hex[i] = [2]float64{hx, hy}
			}

			centerIn := clip.PointInRing(rcx, rcy, p.Outer)
			var vin [6]bool
			anyVertexIn := false
			for i, v := range hex {
				vin[i] = clip.PointInRing(v[0], v[1], p.Outer)
				anyVertexIn = anyVertexIn || vin[i]
			}
			if !centerIn && !anyVertexIn {
				continue
			}

			for i := 0; i < 6; i++ {
				j := (i + 1) % 6
				lines = clipTileEdge(lines, hex[i][0], hex[i][1], hex[j][0], hex[j][1], vin[i], vin[j], p)
			}
		}
		row++
	}

	return dedupeLines(lines)
}
