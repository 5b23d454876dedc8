package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the euclidean distance to another point.
func (p Point) Distance(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Line is a segment between two endpoints. Undirected for geometry;
// the direction only matters to chaining.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

func Ln(x1, y1, x2, y2 float64) Line { return Line{X1: x1, Y1: y1, X2: x2, Y2: y2} }

func (l Line) Start() Point { return Point{l.X1, l.Y1} }
func (l Line) End() Point   { return Point{l.X2, l.Y2} }

func (l Line) Midpoint() Point {
	return Point{(l.X1 + l.X2) / 2, (l.Y1 + l.Y2) / 2}
}

func (l Line) Length() float64 { return l.Start().Distance(l.End()) }

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

func (b BBox) Diagonal() float64 {
	w, h := b.Width(), b.Height()
	return math.Sqrt(w*w + h*h)
}

func (b BBox) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Polygon is an outer ring with zero or more hole rings, plus optional
// source metadata carried through from the input document. Rings are
// implicitly closed. Consumed read-only by every algorithm.
type Polygon struct {
	Outer []Point
	Holes [][]Point

	// Source metadata (zero values when absent).
	ID          string
	GroupID     string
	DataPattern string
	DataColor   string
	DataSpacing *float64
	DataAngle   *float64
	StrokeColor string
}

// NewPolygon builds a polygon with no holes.
func NewPolygon(outer []Point) *Polygon {
	return &Polygon{Outer: outer}
}

// NewPolygonWithHoles builds a polygon with hole rings.
func NewPolygonWithHoles(outer []Point, holes [][]Point) *Polygon {
	return &Polygon{Outer: outer, Holes: holes}
}

// BoundingBox returns the bounds of the outer ring. ok is false for an
// empty ring.
func (p *Polygon) BoundingBox() (BBox, bool) {
	if len(p.Outer) == 0 {
		return BBox{}, false
	}
	b := BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, pt := range p.Outer {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}
	return b, true
}

// Center returns the bounding-box center.
func (p *Polygon) Center() (Point, bool) {
	b, ok := p.BoundingBox()
	if !ok {
		return Point{}, false
	}
	return b.Center(), true
}

// Diagonal returns the bounding-box diagonal length.
func (p *Polygon) Diagonal() (float64, bool) {
	b, ok := p.BoundingBox()
	if !ok {
		return 0, false
	}
	return b.Diagonal(), true
}

// SignedArea applies the shoelace formula to the outer ring. Positive
// for counter-clockwise winding, negative for clockwise.
func (p *Polygon) SignedArea() float64 {
	return SignedAreaOf(p.Outer)
}

// IsClockwise reports the outer ring's winding. In document coordinate
// space (Y down) clockwise winding typically marks a hole.
func (p *Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// SignedAreaOf applies the shoelace formula to an arbitrary ring.
func SignedAreaOf(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i].X * ring[j].Y
		area -= ring[j].X * ring[i].Y
	}
	return area / 2
}
