package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// StripeConfig controls the banded fill: groups of closely spaced
// lines separated by wider gaps.
type StripeConfig struct {
	LinesPerStripe int
	LineSpacing    float64
	StripeSpacing  float64
	AngleDeg       float64
}

// Stripe fills with 3-line bands, intra-band spacing 0.3x the gap.
func Stripe(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	return StripeConfigured(p, StripeConfig{
		LinesPerStripe: 3,
		LineSpacing:    spacing * 0.3,
		StripeSpacing:  spacing,
		AngleDeg:       angleDeg,
	})
}

func StripeConfigured(p *geom.Polygon, cfg StripeConfig) []geom.Line {
	ctx, ok := NewContext(p, cfg.StripeSpacing, cfg.AngleDeg)
	if !ok || cfg.StripeSpacing <= 0 || cfg.LinesPerStripe < 1 {
		return nil
	}

	cos := math.Cos(ctx.AngleRad)
	sin := math.Sin(ctx.AngleRad)
	px, py := -sin, cos

	stripeWidth := float64(cfg.LinesPerStripe-1) * cfg.LineSpacing
	pitch := stripeWidth + cfg.StripeSpacing
	numStripes := int(math.Ceil(ctx.Diagonal / pitch))

	var lines []geom.Line
	for s := -numStripes; s <= numStripes; s++ {
		stripeOff := float64(s) * pitch
		for i := 0; i < cfg.LinesPerStripe; i++ {
			off := stripeOff + (float64(i)-float64(cfg.LinesPerStripe-1)/2)*cfg.LineSpacing
			cx := ctx.Center.X + px*off
			cy := ctx.Center.Y + py*off
			lines = append(lines, geom.Ln(
				cx-cos*ctx.Diagonal, cy-sin*ctx.Diagonal,
				cx+cos*ctx.Diagonal, cy+sin*ctx.Diagonal,
			))
		}
	}

	return clip.ClipLines(lines, p)
}
