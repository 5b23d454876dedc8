package pattern

import (
	"math"

	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Flowfield fills with streamlines traced through a smooth value-noise
// direction field. Seed points sit on a jittered grid; each traces in
// both directions until it leaves the body.
func Flowfield(p *geom.Polygon, spacing, angleDeg float64, seed uint64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	noiseScale := 0.02 / math.Max(spacing, 1) * 10
	r := rng.New(seed)

	cols := int(math.Ceil(ctx.Width / spacing))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(ctx.Height / spacing))
	if rows < 1 {
		rows = 1
	}

	var lines []geom.Line
	for row := 0; row <= rows; row++ {
		xOff := 0.0
		if row%2 != 0 {
			xOff = spacing * 0.5
		}
		for col := 0; col <= cols; col++ {
			jitter := spacing * 0.2
			sx := ctx.Bounds.MinX + float64(col)*spacing + xOff + (r.Float64()-0.5)*jitter
			sy := ctx.Bounds.MinY + float64(row)*spacing + (r.Float64()-0.5)*jitter

			if !ctx.PointInside(sx, sy) {
				continue
			}
			lines = append(lines, traceStreamline(sx, sy, &ctx, spacing, noiseScale)...)
		}
	}
	return lines
}

func traceStreamline(startX, startY float64, ctx *Context, spacing, noiseScale float64) []geom.Line {
	var lines []geom.Line
	stepSize := spacing * 0.5
	const maxSteps = 50

	for _, direction := range [2]float64{-1, 1} {
		x, y := startX, startY
		prevX, prevY := x, y

		for step := 0; step < maxSteps; step++ {
			angle := noiseAngle(x, y, noiseScale) + ctx.AngleRad
			nx := x + math.Cos(angle)*stepSize*direction
			ny := y + math.Sin(angle)*stepSize*direction

			if !ctx.PointInside(nx, ny) {
				break
			}
			if math.Abs(prevX-nx) > 0.01 || math.Abs(prevY-ny) > 0.01 {
				lines = append(lines, geom.Ln(prevX, prevY, nx, ny))
			}
			prevX, prevY = nx, ny
			x, y = nx, ny
		}
	}
	return lines
}

// noiseAngle maps layered sine value noise to a direction.
func noiseAngle(x, y, scale float64) float64 {
	nx := x * scale
	ny := y * scale
	n1 := math.Sin(nx) * math.Cos(ny)
	n2 := math.Sin(nx*2.3+1.7) * math.Cos(ny*2.1+0.9)
	n3 := math.Sin(nx*0.7 + ny*0.5)
	return (n1*0.5 + n2*0.3 + n3*0.2) * math.Pi
}
