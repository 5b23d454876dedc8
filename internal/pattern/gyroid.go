package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// gyroidField is the implicit gyroid surface,
// sin(x)cos(y) + sin(y)cos(z) + sin(z)cos(x).
func gyroidField(x, y, z float64) float64 {
	return math.Sin(x)*math.Cos(y) + math.Sin(y)*math.Cos(z) + math.Sin(z)*math.Cos(x)
}

// Gyroid fills with zero-contours of stacked z-slices through the
// gyroid surface. Spacing scales the wavelength; the angle picks the
// base slice depth.
func Gyroid(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	b, ok := p.BoundingBox()
	if !ok || len(p.Outer) < 3 || spacing <= 0 {
		return nil
	}

	scale := 2 * math.Pi / (spacing * 4)
	numSlices := int(math.Ceil(spacing * 2 / 3))
	if numSlices < 3 {
		numSlices = 3
	}
	zBase := angleDeg * math.Pi / 180

	var lines []geom.Line
	for slice := 0; slice < numSlices; slice++ {
		z := zBase + float64(slice)/float64(numSlices)*math.Pi
		lines = append(lines, gyroidSlice(b, scale, z, spacing/3)...)
	}

	return clip.ClipLines(lines, p)
}

// gyroidSlice contours one z-slice at value zero with marching
// squares.
func gyroidSlice(b geom.BBox, scale, z, resolution float64) []geom.Line {
	w, h := b.Width(), b.Height()
	nx := int(math.Ceil(w / resolution))
	if nx < 10 {
		nx = 10
	}
	ny := int(math.Ceil(h / resolution))
	if ny < 10 {
		ny = 10
	}
	dx := w / float64(nx)
	dy := h / float64(ny)

	grid := make([][]float64, nx+1)
	for i := 0; i <= nx; i++ {
		grid[i] = make([]float64, ny+1)
		x := b.MinX + float64(i)*dx
		for j := 0; j <= ny; j++ {
			y := b.MinY + float64(j)*dy
			grid[i][j] = gyroidField(x*scale, y*scale, z)
		}
	}

	interp := func(v1, v2, p1, p2 float64) float64 {
		if math.Abs(v2-v1) < 1e-10 {
			return (p1 + p2) / 2
		}
		return p1 + (p2-p1)*(-v1)/(v2-v1)
	}

	var lines []geom.Line
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x0 := b.MinX + float64(i)*dx
			y0 := b.MinY + float64(j)*dy
			x1 := x0 + dx
			y1 := y0 + dy

			v00 := grid[i][j]
			v10 := grid[i+1][j]
			v01 := grid[i][j+1]
			v11 := grid[i+1][j+1]

			var c uint8
			if v00 > 0 {
				c |= 1
			}
			if v10 > 0 {
				c |= 2
			}
			if v01 > 0 {
				c |= 4
			}
			if v11 > 0 {
				c |= 8
			}
			if c == 0 || c == 15 {
				continue
			}

			lX, lY := x0, interp(v00, v01, y0, y1)
			rX, rY := x1, interp(v10, v11, y0, y1)
			bX, bY := interp(v00, v10, x0, x1), y0
			tX, tY := interp(v01, v11, x0, x1), y1

			switch c {
			case 1, 14:
				lines = append(lines, geom.Ln(lX, lY, bX, bY))
			case 2, 13:
				lines = append(lines, geom.Ln(bX, bY, rX, rY))
			case 3, 12:
				lines = append(lines, geom.Ln(lX, lY, rX, rY))
			case 4, 11:
				lines = append(lines, geom.Ln(tX, tY, lX, lY))
			case 5, 10:
				// Saddle
				lines = append(lines, geom.Ln(lX, lY, bX, bY))
				lines = append(lines, geom.Ln(tX, tY, rX, rY))
			case 6, 9:
				lines = append(lines, geom.Ln(bX, bY, tX, tY))
			case 7, 8:
				lines = append(lines, geom.Ln(tX, tY, rX, rY))
			}
		}
	}
	return lines
}
