package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
	"plotfill/internal/rng"
)

// ZigzagConfig controls the zigzag fill. Wild mode jitters the row
// offsets and run lengths for a looser look.
type ZigzagConfig struct {
	Spacing  float64
	AngleDeg float64
	Wild     bool
	Wildness float64
	Seed     uint64
}

// Zigzag fills with one continuous back-and-forth path: parallel runs
// joined by connectors to the next row, alternating direction.
func Zigzag(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	return ZigzagConfigured(p, ZigzagConfig{Spacing: spacing, AngleDeg: angleDeg, Seed: 42})
}

// ZigzagWild is the jittered variant.
func ZigzagWild(p *geom.Polygon, spacing, angleDeg, wildness float64, seed uint64) []geom.Line {
	return ZigzagConfigured(p, ZigzagConfig{
		Spacing:  spacing,
		AngleDeg: angleDeg,
		Wild:     true,
		Wildness: math.Max(0, math.Min(1, wildness)),
		Seed:     seed,
	})
}

func ZigzagConfigured(p *geom.Polygon, cfg ZigzagConfig) []geom.Line {
	ctx, ok := NewContext(p, cfg.Spacing, cfg.AngleDeg)
	if !ok || cfg.Spacing <= 0 {
		return nil
	}

	cos := math.Cos(ctx.AngleRad)
	sin := math.Sin(ctx.AngleRad)
	perpCos := math.Cos(ctx.AngleRad + math.Pi/2)
	perpSin := math.Sin(ctx.AngleRad + math.Pi/2)

	halfDiag := ctx.Diagonal * 0.75
	num := int(math.Ceil(ctx.Diagonal/cfg.Spacing)) + 2

	r := rng.New(cfg.Seed)
	var all []geom.Line
	goingPositive := true

	jitterOffset := func(base float64, first bool) float64 {
		if !cfg.Wild || first {
			return base
		}
		return base + r.Signed()*cfg.Wildness*cfg.Spacing*0.3
	}
	jitterLen := func() float64 {
		if !cfg.Wild {
			return halfDiag
		}
		return halfDiag + r.Signed()*cfg.Wildness*halfDiag*0.2
	}

	for i := -num; i <= num; i++ {
		off := jitterOffset(float64(i)*cfg.Spacing, i == -num)
		cx := ctx.Center.X + perpCos*off
		cy := ctx.Center.Y + perpSin*off

		halfLen := jitterLen()
		x1 := cx - cos*halfLen
		y1 := cy - sin*halfLen
		x2 := cx + cos*halfLen
		y2 := cy + sin*halfLen

		if goingPositive {
			all = append(all, geom.Ln(x1, y1, x2, y2))
		} else {
			all = append(all, geom.Ln(x2, y2, x1, y1))
		}

		// Connector down to the next row, from this run's far end to
		// where the next run will start.
		if i < num {
			nextOff := jitterOffset(float64(i+1)*cfg.Spacing, false)
			connX, connY := x2, y2
			if !goingPositive {
				connX, connY = x1, y1
			}
			ncx := ctx.Center.X + perpCos*nextOff
			ncy := ctx.Center.Y + perpSin*nextOff
			nextHalf := jitterLen()
			var nex, ney float64
			if goingPositive {
				nex = ncx + cos*nextHalf
				ney = ncy + sin*nextHalf
			} else {
				nex = ncx - cos*nextHalf
				ney = ncy - sin*nextHalf
			}
			all = append(all, geom.Ln(connX, connY, nex, ney))
		}

		goingPositive = !goingPositive
	}

	return clip.ClipLines(all, p)
}
