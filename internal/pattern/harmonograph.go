package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// pendulum is one decaying oscillator of a lateral harmonograph,
// A*sin(f*t + p)*exp(-d*t).
type pendulum struct {
	amplitude float64
	frequency float64
	phase     float64
	damping   float64
}

func (pd pendulum) eval(t float64) float64 {
	return pd.amplitude * math.Sin(pd.frequency*t+pd.phase) * math.Exp(-pd.damping*t)
}

// Frequency ratio presets for the four pendulums. Near-integer ratios
// keep the traces closed-ish instead of filling the whole disc.
var harmonographPresets = [6][4]float64{
	{2, 3, 3, 2},
	{2, 3, 3, 4},
	{3, 2, 4, 3},
	{4, 3, 3, 4},
	{5, 4, 4, 5},
	{3, 4, 5, 3},
}

// Harmonograph fills with decaying pendulum traces. Spacing picks the
// curve count, angle sets the base phase and rotates through the
// frequency presets.
func Harmonograph(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	baseAmplitude := math.Min(ctx.Width, ctx.Height) / 2 * 0.9
	basePhase := ctx.AngleRad

	numCurves := int(math.Ceil(baseAmplitude / spacing))
	if numCurves < 1 {
		numCurves = 1
	}
	if numCurves > 12 {
		numCurves = 12
	}

	var lines []geom.Line
	for idx := 0; idx < numCurves; idx++ {
		scale := 1 - float64(idx)/(float64(numCurves)+1)*0.3
		amp := baseAmplitude * scale

		preset := harmonographPresets[(idx+int(angleDeg)/30)%len(harmonographPresets)]
		phase := basePhase + float64(idx)*math.Pi/6
		damping := 0.002 + float64(idx)*0.001

		lines = append(lines, singleHarmonograph(ctx.Center, amp, preset, phase, damping, p)...)
	}
	return lines
}

func singleHarmonograph(center geom.Point, amplitude float64, freqs [4]float64, phase, damping float64, p *geom.Polygon) []geom.Line {
	x1 := pendulum{amplitude * 0.6, freqs[0], phase, damping}
	x2 := pendulum{amplitude * 0.4, freqs[1], phase + math.Pi/4, damping * 1.2}
	y1 := pendulum{amplitude * 0.6, freqs[2], phase + math.Pi/2, damping}
	y2 := pendulum{amplitude * 0.4, freqs[3], phase + math.Pi*0.75, damping * 1.2}

	// Trace until the envelope decays to 5% of the start.
	maxT := -math.Log(0.05) / damping
	steps := int(maxT * 50)
	if steps < 200 {
		steps = 200
	}
	if steps > 2000 {
		steps = 2000
	}
	dt := maxT / float64(steps)

	var lines []geom.Line
	var px, py float64
	prevIn := false

	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		x := center.X + x1.eval(t) + x2.eval(t)
		y := center.Y + y1.eval(t) + y2.eval(t)
		curIn := clip.PointInRing(x, y, p.Outer)

		if i > 0 {
			lines = emitInside(lines, px, py, x, y, prevIn, curIn, p)
		}
		px, py = x, y
		prevIn = curIn
	}
	return lines
}
