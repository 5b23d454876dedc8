package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Voronoi fills with approximate cell boundaries around a jittered
// seed grid. Each nearby seed pair contributes a perpendicular
// bisector stub, kept only when no third seed is closer to the
// midpoint.
func Voronoi(p *geom.Polygon, spacing, angleDeg float64, seed uint64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	r := rng.New(seed)
	var seeds [][2]float64

	cols := int(math.Ceil(ctx.Width/spacing)) + 2
	if cols < 3 {
		cols = 3
	}
	rows := int(math.Ceil(ctx.Height/spacing)) + 2
	if rows < 3 {
		rows = 3
	}

	for row := -1; row <= rows; row++ {
		for col := -1; col <= cols; col++ {
			jitter := spacing * 0.4
			x := ctx.Bounds.MinX + float64(col)*spacing + (r.Float64()-0.5)*jitter*2
			y := ctx.Bounds.MinY + float64(row)*spacing + (r.Float64()-0.5)*jitter*2
			rx, ry := ctx.Rotate(x, y)
			seeds = append(seeds, [2]float64{rx, ry})
		}
	}
	if len(seeds) < 3 {
		return nil
	}

	maxEdgeDist := spacing * 2.5
	var all []geom.Line

	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			x1, y1 := seeds[i][0], seeds[i][1]
			x2, y2 := seeds[j][0], seeds[j][1]
			dx, dy := x2-x1, y2-y1
			dist := math.Hypot(dx, dy)
			if dist > maxEdgeDist {
				continue
			}

			mx, my := (x1+x2)/2, (y1+y2)/2
			if mx < ctx.Bounds.MinX-spacing || mx > ctx.Bounds.MaxX+spacing ||
				my < ctx.Bounds.MinY-spacing || my > ctx.Bounds.MaxY+spacing {
				continue
			}

			px, py := -dy/dist, dx/dist
			edgeLen := spacing * 1.5

			// A bisector stub only belongs to the diagram when the pair
			// actually shares a cell wall at the midpoint.
			midDistSq := dist * dist / 4
			valid := true
			for k, s := range seeds {
				if k == i || k == j {
					continue
				}
				dkSq := (mx-s[0])*(mx-s[0]) + (my-s[1])*(my-s[1])
				if dkSq < midDistSq*0.95 {
					valid = false
					break
				}
			}
			if valid {
				all = append(all, geom.Ln(mx-px*edgeLen, my-py*edgeLen, mx+px*edgeLen, my+py*edgeLen))
			}
		}
	}

	if len(all) == 0 {
		for i := 0; i < len(seeds); i++ {
			for j := i + 1; j < len(seeds); j++ {
				x1, y1 := seeds[i][0], seeds[i][1]
				x2, y2 := seeds[j][0], seeds[j][1]
				dx, dy := x2-x1, y2-y1
				dist := math.Hypot(dx, dy)
				if dist > maxEdgeDist || dist < 0.001 {
					continue
				}
				mx, my := (x1+x2)/2, (y1+y2)/2
				px, py := -dy/dist, dx/dist
				all = append(all, geom.Ln(mx-px*spacing, my-py*spacing, mx+px*spacing, my+py*spacing))
			}
		}
	}

	return clip.ClipLines(all, p)
}
