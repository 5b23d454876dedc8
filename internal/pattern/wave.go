package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Wave fills with interference contours from three point sources
// arranged 120 degrees apart around the center. The angle rotates the
// source triangle; the spacing sets both wavelength and contour step.
func Wave(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	sourceDist := ctx.Diagonal * 0.4
	sources := [3][2]float64{}
	for i := 0; i < 3; i++ {
		a := ctx.AngleRad + float64(i)*math.Pi*2/3
		sources[i] = [2]float64{
			ctx.Center.X + sourceDist*math.Cos(a),
			ctx.Center.Y + sourceDist*math.Sin(a),
		}
	}

	wavelength := spacing * 2
	resolution := int(math.Ceil(ctx.Diagonal / (spacing * 0.5)))
	step := ctx.Diagonal * 1.2 / float64(resolution)
	startX := ctx.Center.X - ctx.Diagonal*0.6
	startY := ctx.Center.Y - ctx.Diagonal*0.6

	field := make([][]float64, resolution+1)
	for j := 0; j <= resolution; j++ {
		row := make([]float64, resolution+1)
		y := startY + float64(j)*step
		for i := 0; i <= resolution; i++ {
			x := startX + float64(i)*step
			v := 0.0
			for _, s := range sources {
				d := math.Hypot(x-s[0], y-s[1])
				v += math.Sin(d * 2 * math.Pi / wavelength)
			}
			row[i] = v
		}
		field[j] = row
	}

	var all []geom.Line
	const numContours = 8
	for level := 0; level < numContours; level++ {
		threshold := -2.5 + float64(level)*5.0/numContours
		for j := 0; j < resolution; j++ {
			for i := 0; i < resolution; i++ {
				all = marchSquare(all, i, j, field, threshold, startX, startY, step)
			}
		}
	}

	return clip.ClipLines(all, p)
}

// marchSquare extracts the contour pieces crossing one grid cell.
func marchSquare(lines []geom.Line, i, j int, field [][]float64, threshold, startX, startY, step float64) []geom.Line {
	v00 := field[j][i] - threshold
	v10 := field[j][i+1] - threshold
	v01 := field[j+1][i] - threshold
	v11 := field[j+1][i+1] - threshold

	x0 := startX + float64(i)*step
	x1 := startX + float64(i+1)*step
	y0 := startY + float64(j)*step
	y1 := startY + float64(j+1)*step

	var config uint8
	if v00 > 0 {
		config |= 1
	}
	if v10 > 0 {
		config |= 2
	}
	if v01 > 0 {
		config |= 4
	}
	if v11 > 0 {
		config |= 8
	}

	interp := func(a, b, va, vb float64) float64 {
		if math.Abs(va-vb) < 1e-10 {
			return (a + b) / 2
		}
		return a + (b-a)*(-va)/(vb-va)
	}

	ebX, ebY := interp(x0, x1, v00, v10), y0
	etX, etY := interp(x0, x1, v01, v11), y1
	elX, elY := x0, interp(y0, y1, v00, v01)
	erX, erY := x1, interp(y0, y1, v10, v11)

	switch config {
	case 0, 15:
	case 1, 14:
		lines = append(lines, geom.Ln(ebX, ebY, elX, elY))
	case 2, 13:
		lines = append(lines, geom.Ln(ebX, ebY, erX, erY))
	case 3, 12:
		lines = append(lines, geom.Ln(elX, elY, erX, erY))
	case 4, 11:
		lines = append(lines, geom.Ln(elX, elY, etX, etY))
	case 5, 10:
		// Saddle
		lines = append(lines, geom.Ln(ebX, ebY, elX, elY))
		lines = append(lines, geom.Ln(etX, etY, erX, erY))
	case 6, 9:
		lines = append(lines, geom.Ln(ebX, ebY, etX, etY))
	case 7, 8:
		lines = append(lines, geom.Ln(etX, etY, erX, erY))
	}
	return lines
}
