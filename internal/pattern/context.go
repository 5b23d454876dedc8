// Package pattern holds the fill generators. Every generator follows
// the same contract: take a polygon, a spacing and an angle, return
// the segments a plotter would draw. Degenerate input yields nil.
package pattern

import (
	"math"

	"plotfill/internal/clip"
	"plotfill/internal/geom"
)

// Context bundles the per-call values most generators need: the
// polygon, its bounds and the derived measurements, computed once.
type Context struct {
	Polygon  *geom.Polygon
	Spacing  float64
	AngleDeg float64
	AngleRad float64
	Bounds   geom.BBox
	Center   geom.Point
	Width    float64
	Height   float64
	Diagonal float64
}

// NewContext precomputes the shared values. ok is false when the
// polygon cannot host a fill (fewer than 3 outer vertices).
func NewContext(p *geom.Polygon, spacing, angleDeg float64) (Context, bool) {
	if len(p.Outer) < 3 {
		return Context{}, false
	}
	b, ok := p.BoundingBox()
	if !ok {
		return Context{}, false
	}
	w, h := b.Width(), b.Height()
	return Context{
		Polygon:  p,
		Spacing:  spacing,
		AngleDeg: angleDeg,
		AngleRad: angleDeg * math.Pi / 180,
		Bounds:   b,
		Center:   b.Center(),
		Width:    w,
		Height:   h,
		Diagonal: math.Sqrt(w*w + h*h),
	}, true
}

// Rotate spins a point around the context center by the fill angle.
func (c *Context) Rotate(x, y float64) (float64, float64) {
	dx := x - c.Center.X
	dy := y - c.Center.Y
	cos := math.Cos(c.AngleRad)
	sin := math.Sin(c.AngleRad)
	return c.Center.X + dx*cos - dy*sin, c.Center.Y + dx*sin + dy*cos
}

// PointInside tests against the outer ring and every hole.
func (c *Context) PointInside(x, y float64) bool {
	return clip.PointInBody(x, y, c.Polygon)
}

// LineInside tests the segment midpoint.
func (c *Context) LineInside(l geom.Line) bool {
	m := l.Midpoint()
	return c.PointInside(m.X, m.Y)
}

// Padding is how far beyond the bounds a generator should reach so
// the rotated fill still covers every corner.
func (c *Context) Padding() float64 {
	return c.Diagonal/2 + c.Spacing
}

// LineCount is the number of passes needed to cover the diagonal.
func (c *Context) LineCount() int {
	return int(math.Ceil(c.Diagonal / c.Spacing))
}

// Rotation is a fixed rotation around a center point.
type Rotation struct {
	CX, CY   float64
	Cos, Sin float64
}

func NewRotation(cx, cy, angleRad float64) Rotation {
	return Rotation{CX: cx, CY: cy, Cos: math.Cos(angleRad), Sin: math.Sin(angleRad)}
}

func NewRotationDegrees(cx, cy, angleDeg float64) Rotation {
	return NewRotation(cx, cy, angleDeg*math.Pi/180)
}

func (r Rotation) Apply(x, y float64) (float64, float64) {
	dx := x - r.CX
	dy := y - r.CY
	return r.CX + dx*r.Cos - dy*r.Sin, r.CY + dx*r.Sin + dy*r.Cos
}

func (r Rotation) ApplyLine(l geom.Line) geom.Line {
	x1, y1 := r.Apply(l.X1, l.Y1)
	x2, y2 := r.Apply(l.X2, l.Y2)
	return geom.Ln(x1, y1, x2, y2)
}

// Direction carries the unit vector along a family of parallel lines
// and the perpendicular used to step between them.
type Direction struct {
	DX, DY float64
	PX, PY float64
}

func NewDirection(angleRad float64) Direction {
	cos := math.Cos(angleRad)
	sin := math.Sin(angleRad)
	return Direction{DX: cos, DY: sin, PX: -sin, PY: cos}
}

func NewDirectionDegrees(angleDeg float64) Direction {
	return NewDirection(angleDeg * math.Pi / 180)
}

// ParallelLines emits 2*num+1 unclipped lines through center, spaced
// along the perpendicular and extended length both ways.
func (d Direction) ParallelLines(center geom.Point, spacing float64, num int, length float64) []geom.Line {
	lines := make([]geom.Line, 0, 2*num+1)
	for i := -num; i <= num; i++ {
		off := float64(i) * spacing
		cx := center.X + d.PX*off
		cy := center.Y + d.PY*off
		lines = append(lines, geom.Ln(
			cx-d.DX*length, cy-d.DY*length,
			cx+d.DX*length, cy+d.DY*length,
		))
	}
	return lines
}
