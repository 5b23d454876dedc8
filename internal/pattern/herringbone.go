package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Herringbone fills with short chevron strokes. Cells alternate
// between +45 and -45 degrees off the base angle by grid parity.
func Herringbone(p *geom.Polygon, spacing, angleDeg float64) []geom.Line {
	ctx, ok := NewContext(p, spacing, angleDeg)
	if !ok || spacing <= 0 {
		return nil
	}

	herring := 45 * math.Pi / 180
	angle1 := ctx.AngleRad + herring
	angle2 := ctx.AngleRad - herring

	rowSpacing := spacing * 2
	segLen := spacing * 3
	numRows := int(math.Ceil(ctx.Diagonal / rowSpacing))
	numCols := int(math.Ceil(ctx.Diagonal / segLen))

	rot := NewRotation(ctx.Center.X, ctx.Center.Y, ctx.AngleRad)

	var lines []geom.Line
	for row := -numRows; row <= numRows; row++ {
		yBase := ctx.Center.Y + float64(row)*rowSpacing
		for col := -numCols; col <= numCols; col++ {
			xBase := ctx.Center.X + float64(col)*segLen

			angle := angle1
			if (row+col)%2 != 0 {
				angle = angle2
			}
			cos, sin := math.Cos(angle), math.Sin(angle)
			half := segLen / 2
			l := geom.Ln(xBase-cos*half, yBase-sin*half, xBase+cos*half, yBase+sin*half)
			lines = append(lines, rot.ApplyLine(l))
		}
	}

	return clip.ClipLines(lines, p)
}
