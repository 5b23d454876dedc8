package pattern

import (
	"math"

	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// Scribble fills with momentum-smoothed random walks. Strokes start
// at random interior points, wander with a blend of momentum and
// noise, and curve back toward the center when they hit the boundary.
// Small spiral loops are scattered on top for texture.
func Scribble(p *geom.Polygon, spacing, angleDeg float64, seed uint64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	r := rng.New(seed)
	var lines []geom.Line

	stepSize := spacing * 0.5
	area := ctx.Width * ctx.Height
	targetLength := area / spacing
	numStrokes := int(targetLength / (math.Max(ctx.Width, ctx.Height) * 2))
	if numStrokes < 3 {
		numStrokes = 3
	}

	for stroke := 0; stroke < numStrokes; stroke++ {
		x, y := ctx.Center.X, ctx.Center.Y
		for attempts := 0; attempts <= 100; attempts++ {
			cx := ctx.Bounds.MinX + r.Float64()*ctx.Width
			cy := ctx.Bounds.MinY + r.Float64()*ctx.Height
			if ctx.PointInside(cx, cy) {
				x, y = cx, cy
				break
			}
		}

		baseAngle := ctx.AngleRad + float64(stroke)/float64(numStrokes)*2*math.Pi
		angle := baseAngle + r.Signed()*math.Pi*0.5
		momentumAngle := angle

		maxSteps := int(math.Max(ctx.Width, ctx.Height) * 4 / stepSize)
		const momentum = 0.85
		const wiggle = 0.4

		for step := 0; step < maxSteps; step++ {
			nx := x + math.Cos(angle)*stepSize
			ny := y + math.Sin(angle)*stepSize

			if ctx.PointInside(nx, ny) {
				lines = append(lines, geom.Ln(x, y, nx, ny))
				x, y = nx, ny
				momentumAngle = momentumAngle*momentum + angle*(1-momentum)
				angle = momentumAngle + r.Signed()*wiggle
			} else {
				// Hit the boundary; steer back toward the center.
				toCenter := math.Atan2(ctx.Center.Y-y, ctx.Center.X-x)
				angle = toCenter + r.Signed()*math.Pi*0.5
				momentumAngle = angle
			}
		}
	}

	addOrganicLoops(&lines, &ctx, spacing, r)
	return lines
}

// addOrganicLoops scatters small inward spirals across the body.
func addOrganicLoops(lines *[]geom.Line, ctx *Context, spacing float64, r *rng.Rng) {
	numLoops := int(ctx.Width * ctx.Height / (spacing * spacing * 100))
	for i := 0; i < numLoops; i++ {
		cx := ctx.Bounds.MinX + r.Float64()*ctx.Width
		cy := ctx.Bounds.MinY + r.Float64()*ctx.Height
		if !ctx.PointInside(cx, cy) {
			continue
		}

		loopRadius := spacing * (1 + r.Float64()*2)
		loopTurns := 1 + r.Float64()*2
		const steps = 20

		px, py := cx, cy
		for s := 1; s <= steps; s++ {
			t := float64(s) / steps
			theta := t * loopTurns * 2 * math.Pi
			rad := loopRadius * t * (1 - t*0.3)
			nx := cx + rad*math.Cos(theta)
			ny := cy + rad*math.Sin(theta)
			if ctx.PointInside(nx, ny) {
				*lines = append(*lines, geom.Ln(px, py, nx, ny))
				px, py = nx, ny
			}
		}
	}
}
