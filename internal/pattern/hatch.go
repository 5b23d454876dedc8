package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// HatchLines covers the polygon's bounding box with unclipped parallel
// lines at the given angle. The sweep is sized to the bbox diagonal
// padded by ~sqrt(2) so a rotated box stays covered.
func HatchLines(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	b, ok := p.BoundingBox()
	if !ok {
		return nil
	}
	w, h := b.Width(), b.Height()
	angleRad := angleDeg * math.Pi / 180
	diagonal := math.Sqrt(w*w+h*h) * 1.42

	perpX := math.Cos(angleRad + math.Pi/2)
	perpY := math.Sin(angleRad + math.Pi/2)
	dirX := math.Cos(angleRad)
	dirY := math.Sin(angleRad)
	center := b.Center()

	num := int(math.Ceil(diagonal/spacing)) + 1
	lines := make([]geom.Line, 0, 2*num+1)
	for i := -num; i <= num; i++ {
		off := float64(i) * spacing
		cx := center.X + perpX*off
		cy := center.Y + perpY*off
		lines = append(lines, geom.Ln(
			cx-dirX*diagonal, cy-dirY*diagonal,
			cx+dirX*diagonal, cy+dirY*diagonal,
		))
	}
	return lines
}

// Lines is the plain parallel-hatch fill.
func Lines(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	return clip.ClipLines(HatchLines(p, spacing, angleDeg), p)
}

// Crosshatch overlays two perpendicular hatch fills.
func Crosshatch(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	lines := Lines(p, spacing, angleDeg)
	return append(lines, Lines(p, spacing, angleDeg+90)...)
}
